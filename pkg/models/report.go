package models

import "time"

// CategoryTotals accumulates milliunits per category.
type CategoryTotals map[CategoryKey]int64

// CategoryAverages holds the average monthly amount per category in major
// currency units.
type CategoryAverages map[CategoryKey]float64

// Report is the result for a single window.
type Report struct {
	Months   int              `json:"months" yaml:"months"`
	Start    time.Time        `json:"-" yaml:"-"`
	End      time.Time        `json:"-" yaml:"-"`
	Averages CategoryAverages `json:"averages" yaml:"averages"`
}
