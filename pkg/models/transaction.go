package models

import "time"

// UncategorizedKey is used for transactions that carry no category.
const UncategorizedKey CategoryKey = "Uncategorized"

// CategoryKey identifies a category. Depending on the source it holds either
// the category name or the opaque YNAB category id.
type CategoryKey string

// Transaction is a budget transaction with its amount in milliunits.
type Transaction struct {
	ID              string
	Date            time.Time
	Amount          int64
	Category        CategoryKey
	SubTransactions []SubTransaction
}

// SubTransaction is a split portion of a parent transaction.
type SubTransaction struct {
	ID       string
	Amount   int64
	Category CategoryKey
}

// IsSplit reports whether the transaction amount is carried by its
// sub-transactions.
func (t *Transaction) IsSplit() bool {
	return len(t.SubTransactions) > 0
}

// CategoryOrDefault returns k, or UncategorizedKey when k is empty.
func CategoryOrDefault(k CategoryKey) CategoryKey {
	if k == "" {
		return UncategorizedKey
	}
	return k
}
