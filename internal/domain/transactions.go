package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category labels a transaction. Only the reserved labels take part in aggregation.
type Category string

const (
	CategoryIncome  Category = "Income"
	CategoryExpense Category = "Expense"
)

// IsReserved reports whether c is one of the labels the summary aggregates.
func (c Category) IsReserved() bool {
	return c == CategoryIncome || c == CategoryExpense
}

// Transaction is a single ledger entry. Date carries no time component.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description"` // may be empty
}

// Validate rejects entries that must never reach storage.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount %s is negative", ErrValidation, t.Amount)
	}
	if strings.TrimSpace(string(t.Category)) == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	// Stored descriptions break lines with \n only.
	if strings.ContainsRune(t.Description, '\r') {
		return fmt.Errorf("%w: description contains a carriage return", ErrValidation)
	}
	return nil
}

// DateOf drops the clock and zone of t, keeping its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
