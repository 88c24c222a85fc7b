// Package averages computes the average monthly amount per category over a
// reporting window.
//
// Amounts are accumulated as integer milliunits and converted to major units
// once, when the averages are produced. Nothing downstream divides by 1000
// again.
package averages

import (
	"errors"
	"fmt"

	"github.com/yurifrl/ynabavg/pkg/models"
	"github.com/yurifrl/ynabavg/pkg/window"
)

// MilliunitsPerUnit is the YNAB fixed-point scale.
const MilliunitsPerUnit = 1000

// ErrInvalidMonths is returned when a month count is not a positive number.
var ErrInvalidMonths = errors.New("month count must be at least 1")

// Totals sums the amounts of the transactions dated within w per category.
// Split transactions contribute their sub-transactions only.
func Totals(txs []models.Transaction, w window.Window) models.CategoryTotals {
	totals := make(models.CategoryTotals)
	for i := range txs {
		tx := &txs[i]
		if !w.Contains(tx.Date) {
			continue
		}
		if !tx.IsSplit() {
			totals[models.CategoryOrDefault(tx.Category)] += tx.Amount
			continue
		}
		for _, sub := range tx.SubTransactions {
			totals[models.CategoryOrDefault(sub.Category)] += sub.Amount
		}
	}
	return totals
}

// Averages divides every total by months and converts it to major units.
func Averages(totals models.CategoryTotals, months int) (models.CategoryAverages, error) {
	if months < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonths, months)
	}
	averages := make(models.CategoryAverages, len(totals))
	for category, total := range totals {
		averages[category] = float64(total) / float64(months*MilliunitsPerUnit)
	}
	return averages, nil
}

// Calculate returns the average monthly amount per category for w, using the
// window length as divisor.
func Calculate(txs []models.Transaction, w window.Window) (models.CategoryAverages, error) {
	return Averages(Totals(txs, w), w.Months)
}

// ResolveTotals replaces category ids with their names. Keys without a name
// are kept as-is. Ids that share a name are added up as integer milliunits,
// so the result does not depend on map iteration order.
func ResolveTotals(totals models.CategoryTotals, names map[models.CategoryKey]string) models.CategoryTotals {
	if len(names) == 0 {
		return totals
	}
	out := make(models.CategoryTotals, len(totals))
	for key, total := range totals {
		if name, ok := names[key]; ok && name != "" {
			key = models.CategoryKey(name)
		}
		out[key] += total
	}
	return out
}
