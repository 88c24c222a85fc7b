package parser

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/ynabavg/pkg/models"
)

// DefaultDateLayout is the ISO layout YNAB uses when the budget date format
// is set to YYYY-MM-DD.
const DefaultDateLayout = time.DateOnly

type Parser struct {
	logger     *log.Logger
	dateLayout string
}

func New(logger *log.Logger, dateLayout string) *Parser {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	return &Parser{
		logger:     logger,
		dateLayout: dateLayout,
	}
}

// FileSource serves transactions from a register export on disk. Exports
// carry category names, so there is nothing to look up.
type FileSource struct {
	path   string
	parser *Parser
}

func NewFileSource(path string, p *Parser) *FileSource {
	return &FileSource{path: path, parser: p}
}

// Transactions returns the exported transactions dated on or after since.
func (s *FileSource) Transactions(since time.Time) ([]models.Transaction, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read register file: %w", err)
	}

	all, err := s.parser.ParseRegisterCSV(data)
	if err != nil {
		return nil, fmt.Errorf("failed to process register file %s: %w", s.path, err)
	}

	sinceDay := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, time.UTC)
	txs := make([]models.Transaction, 0, len(all))
	for _, tx := range all {
		if tx.Date.Before(sinceDay) {
			continue
		}
		txs = append(txs, tx)
	}
	s.parser.logger.Debug("loaded register file", "path", s.path, "total", len(all), "since", len(txs))
	return txs, nil
}

func (s *FileSource) Categories() (map[models.CategoryKey]string, error) {
	return nil, nil
}
