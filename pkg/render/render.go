// Package render writes reports as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/yurifrl/ynabavg/pkg/models"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")) // blue

// Write renders reports to w in the given format.
func Write(w io.Writer, format Format, reports []models.Report) error {
	switch format {
	case Text, "":
		return WriteText(w, reports)
	case JSON:
		return WriteJSON(w, reports)
	case YAML:
		return WriteYAML(w, reports)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteText prints one labelled block per report with a "category: average"
// line per category, sorted by category.
func WriteText(w io.Writer, reports []models.Report) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		heading := fmt.Sprintf("Last %d months", r.Months)
		if r.Months == 1 {
			heading = "Last month"
		}
		if !r.Start.IsZero() {
			heading += fmt.Sprintf(" (%s – %s)", r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly))
		}
		if _, err := fmt.Fprintln(w, headingStyle.Render(heading)); err != nil {
			return err
		}
		for _, category := range sortedCategories(r.Averages) {
			if _, err := fmt.Fprintf(w, "%s: %.2f\n", category, r.Averages[category]); err != nil {
				return err
			}
		}
	}
	return nil
}

func WriteJSON(w io.Writer, reports []models.Report) error {
	if reports == nil {
		reports = []models.Report{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func WriteYAML(w io.Writer, reports []models.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func sortedCategories(averages models.CategoryAverages) []models.CategoryKey {
	keys := make([]models.CategoryKey, 0, len(averages))
	for k := range averages {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
