package averages

import (
	"fmt"
	"sort"
	"time"

	"github.com/yurifrl/ynabavg/pkg/models"
	"github.com/yurifrl/ynabavg/pkg/window"
)

// Normalize validates month counts, drops duplicates and sorts them from the
// widest window to the narrowest.
func Normalize(months []int) ([]int, error) {
	if len(months) == 0 {
		return nil, fmt.Errorf("%w: no month counts given", ErrInvalidMonths)
	}
	seen := make(map[int]bool, len(months))
	out := make([]int, 0, len(months))
	for _, m := range months {
		if m < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidMonths, m)
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out, nil
}

// Since returns the start of the widest window, i.e. the date transactions
// have to be fetched from to serve every month count in months.
func Since(now time.Time, months []int) (time.Time, error) {
	sorted, err := Normalize(months)
	if err != nil {
		return time.Time{}, err
	}
	return window.FirstDayOfMonthsAgo(now, sorted[0]), nil
}

// Batch computes one report per month count from a single transaction set.
// Reports are ordered by month count, widest first. When names is not empty,
// category ids are replaced by their names before averaging.
func Batch(txs []models.Transaction, now time.Time, months []int, names map[models.CategoryKey]string) ([]models.Report, error) {
	sorted, err := Normalize(months)
	if err != nil {
		return nil, err
	}

	reports := make([]models.Report, 0, len(sorted))
	for _, m := range sorted {
		w, err := window.New(now, m)
		if err != nil {
			return nil, err
		}
		avgs, err := Averages(ResolveTotals(Totals(txs, w), names), w.Months)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate %d month window: %w", m, err)
		}
		reports = append(reports, models.Report{
			Months:   m,
			Start:    w.Start,
			End:      w.End,
			Averages: avgs,
		})
	}
	return reports, nil
}
