package ynab

import (
	"time"

	"github.com/yurifrl/ynabavg/pkg/models"
)

// Source reads transactions and categories of a single budget.
type Source struct {
	client   *YNABClient
	budgetID string
}

func NewSource(client *YNABClient, budgetID string) *Source {
	return &Source{client: client, budgetID: budgetID}
}

func (s *Source) Transactions(since time.Time) ([]models.Transaction, error) {
	return s.client.Transactions(s.budgetID, since)
}

func (s *Source) Categories() (map[models.CategoryKey]string, error) {
	return s.client.Categories(s.budgetID)
}
