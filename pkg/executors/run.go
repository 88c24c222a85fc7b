package executors

import (
	"fmt"
	"time"

	"github.com/yurifrl/ynabavg/pkg/averages"
	"github.com/yurifrl/ynabavg/pkg/models"
)

// Run computes one report per month count, relative to now. Transactions are
// fetched once, starting at the widest window, and re-filtered per window.
func (e *Executor) Run(now time.Time, months []int) ([]models.Report, error) {
	sorted, err := averages.Normalize(months)
	if err != nil {
		return nil, err
	}

	since, err := averages.Since(now, sorted)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("running report", "months", sorted, "since", since.Format(time.DateOnly))
	txs, err := e.source.Transactions(since)
	if err != nil {
		return nil, err
	}
	e.logger.Info("fetched transactions", "count", len(txs))

	var names map[models.CategoryKey]string
	if e.resolveNames {
		names, err = e.source.Categories()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category names: %w", err)
		}
		e.logger.Debug("resolving category names", "categories", len(names))
	}

	return averages.Batch(txs, now, sorted, names)
}
