package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/yurifrl/ynabavg/pkg/models"
)

const (
	colDate          = "date"
	colCategory      = "category"
	colGroupCategory = "category group/category"
	colOutflow       = "outflow"
	colInflow        = "inflow"
)

// ParseRegisterCSV parses a YNAB register export. Split transactions are
// exported one row per split, so every row becomes a transaction of its own,
// keyed by category name and dated in UTC.
func (p *Parser) ParseRegisterCSV(data []byte) ([]models.Transaction, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\ufeff"))))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colDate, colOutflow, colInflow} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv header is missing column %q", required)
		}
	}
	categoryCol, ok := cols[colCategory]
	if !ok {
		if categoryCol, ok = cols[colGroupCategory]; !ok {
			return nil, fmt.Errorf("csv header is missing a category column")
		}
	}

	field := func(rec []string, i int) string {
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	txs := make([]models.Transaction, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}

		date, err := time.Parse(p.dateLayout, field(rec, cols[colDate]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date: %w", i+1, err)
		}
		outflow, err := parseMilliunits(field(rec, cols[colOutflow]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid outflow: %w", i+1, err)
		}
		inflow, err := parseMilliunits(field(rec, cols[colInflow]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid inflow: %w", i+1, err)
		}

		txs = append(txs, models.Transaction{
			ID:       strconv.Itoa(i),
			Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Amount:   inflow - outflow,
			Category: models.CategoryKey(field(rec, categoryCol)),
		})
	}

	p.logger.Debug("parsed register csv", "rows", len(records)-1, "transactions", len(txs))
	return txs, nil
}

// currencySymbols are the only non-numeric characters accepted in an
// exported amount, besides whitespace.
var currencySymbols = strings.NewReplacer("R$", "", "$", "", "€", "", "£", "", "¥", "", "₹", "")

// parseMilliunits converts an exported amount such as "$1,234.56",
// "1.234,56€" or "(50.00)" into milliunits. An empty value is zero.
func parseMilliunits(s string) (int64, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, currencySymbols.Replace(s))
	if clean == "" {
		return 0, nil
	}

	negative := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		negative = true
		clean = clean[1 : len(clean)-1]
	}
	if strings.HasPrefix(clean, "-") {
		if negative {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		negative = true
		clean = clean[1:]
	}
	if clean == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	for _, r := range clean {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}

	dot := strings.LastIndex(clean, ".")
	comma := strings.LastIndex(clean, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case comma >= 0:
		// A single comma followed by at most two digits is a decimal comma.
		if strings.Count(clean, ",") == 1 && len(clean)-comma-1 <= 2 {
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if negative {
		v = -v
	}
	return int64(math.Round(v * 1000)), nil
}
