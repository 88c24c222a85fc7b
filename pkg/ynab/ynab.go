package ynab

import (
	"fmt"
	"time"

	"github.com/brunomvsouza/ynab.go"
	"github.com/brunomvsouza/ynab.go/api"
	"github.com/brunomvsouza/ynab.go/api/category"
	"github.com/brunomvsouza/ynab.go/api/transaction"
	"github.com/charmbracelet/log"

	"github.com/yurifrl/ynabavg/pkg/models"
)

type transactionGetter interface {
	GetTransactions(budgetID string, f *transaction.Filter) ([]*transaction.Transaction, error)
}

type categoryGetter interface {
	GetCategories(budgetID string, f *api.Filter) (*category.SearchResultSnapshot, error)
}

// YNABClient wraps the YNAB client and converts its responses into the
// models used for reporting.
type YNABClient struct {
	transactions transactionGetter
	categories   categoryGetter
	logger       *log.Logger
}

func New(token string, logger *log.Logger) *YNABClient {
	client := ynab.NewClient(token)
	return newClient(client.Transaction(), client.Category(), logger)
}

func newClient(transactions transactionGetter, categories categoryGetter, logger *log.Logger) *YNABClient {
	return &YNABClient{
		transactions: transactions,
		categories:   categories,
		logger:       logger,
	}
}

// Transactions returns every transaction of the budget dated on or after
// since. Categories are keyed by id.
func (c *YNABClient) Transactions(budgetID string, since time.Time) ([]models.Transaction, error) {
	filter := &transaction.Filter{Since: &api.Date{Time: since}}

	c.logger.Debug("fetching transactions", "budget_id", budgetID, "since", since.Format(time.DateOnly))
	remote, err := c.transactions.GetTransactions(budgetID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	txs := convertTransactions(remote)
	c.logger.Debug("fetched transactions", "count", len(txs))
	return txs, nil
}

// Categories returns the category id to name mapping of the budget,
// flattened across category groups.
func (c *YNABClient) Categories(budgetID string) (map[models.CategoryKey]string, error) {
	c.logger.Debug("fetching categories", "budget_id", budgetID)
	snapshot, err := c.categories.GetCategories(budgetID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	if snapshot == nil {
		return map[models.CategoryKey]string{}, nil
	}
	return flattenCategories(snapshot.GroupWithCategories), nil
}

func convertTransactions(remote []*transaction.Transaction) []models.Transaction {
	txs := make([]models.Transaction, 0, len(remote))
	for _, rt := range remote {
		if rt == nil || rt.Deleted {
			continue
		}
		tx := models.Transaction{
			ID:       rt.ID,
			Date:     rt.Date.Time,
			Amount:   rt.Amount,
			Category: key(rt.CategoryID),
		}
		for _, st := range rt.SubTransactions {
			if st == nil || st.Deleted {
				continue
			}
			tx.SubTransactions = append(tx.SubTransactions, models.SubTransaction{
				ID:       st.ID,
				Amount:   st.Amount,
				Category: key(st.CategoryID),
			})
		}
		txs = append(txs, tx)
	}
	return txs
}

func flattenCategories(groups []*category.GroupWithCategories) map[models.CategoryKey]string {
	names := make(map[models.CategoryKey]string)
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, cat := range g.Categories {
			if cat == nil {
				continue
			}
			names[models.CategoryKey(cat.ID)] = cat.Name
		}
	}
	return names
}

func key(id *string) models.CategoryKey {
	if id == nil {
		return ""
	}
	return models.CategoryKey(*id)
}
