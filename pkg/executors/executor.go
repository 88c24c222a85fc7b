package executors

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/ynabavg/pkg/models"
)

// Source provides the transactions a report is computed from and,
// optionally, the names of the categories they reference.
//
//go:generate mockgen -destination=mocks/mock_source.go -package=mocks -source=executor.go Source
type Source interface {
	Transactions(since time.Time) ([]models.Transaction, error)
	Categories() (map[models.CategoryKey]string, error)
}

type Executor struct {
	logger       *log.Logger
	source       Source
	resolveNames bool
}

func New(logger *log.Logger, source Source, resolveNames bool) *Executor {
	return &Executor{
		logger:       logger,
		source:       source,
		resolveNames: resolveNames,
	}
}
