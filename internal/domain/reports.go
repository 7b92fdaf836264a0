package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the income/expense totals over a set of transactions.
// Rounding for display is left to the presenter.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetSavings   decimal.Decimal `json:"net_savings"`
}

// LedgerReport is the result of a range query plus its summary.
type LedgerReport struct {
	Start        time.Time     `json:"start"`
	End          time.Time     `json:"end"`
	Transactions []Transaction `json:"transactions"`
	Summary      Summary       `json:"summary"`
}

// Empty reports whether the range matched no transactions.
func (r *LedgerReport) Empty() bool {
	return len(r.Transactions) == 0
}

// DailyPoint is one day of the income/expense time series.
type DailyPoint struct {
	Date    time.Time       `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
