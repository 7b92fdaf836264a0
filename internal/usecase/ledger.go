package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"mini-ledger/internal/domain"
)

// LedgerUseCase records transactions and answers range queries over them.
type LedgerUseCase struct {
	store TransactionStore
}

// NewLedgerUseCase creates a new instance of the usecase.
func NewLedgerUseCase(store TransactionStore) *LedgerUseCase {
	return &LedgerUseCase{store: store}
}

// Initialize makes sure the backing store exists.
func (uc *LedgerUseCase) Initialize(ctx context.Context) error {
	if err := uc.store.Initialize(ctx); err != nil {
		return fmt.Errorf("could not initialize store: %w", err)
	}
	return nil
}

// AddTransaction validates tx and appends it, creating the store on first use.
func (uc *LedgerUseCase) AddTransaction(ctx context.Context, tx domain.Transaction) error {
	tx.Date = domain.DateOf(tx.Date)
	if err := tx.Validate(); err != nil {
		return err
	}
	if err := uc.Initialize(ctx); err != nil {
		return err
	}
	if err := uc.store.Append(ctx, tx); err != nil {
		return fmt.Errorf("could not append transaction: %w", err)
	}
	return nil
}

// FilterByRange returns the stored transactions dated within [start, end], in storage order.
// A start after end is not an error; it simply matches nothing.
func (uc *LedgerUseCase) FilterByRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	transactions, err := uc.store.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}
	return filterTransactionsByDate(transactions, start, end), nil
}

// View runs FilterByRange and summarizes the result.
func (uc *LedgerUseCase) View(ctx context.Context, start, end time.Time) (*domain.LedgerReport, error) {
	filtered, err := uc.FilterByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &domain.LedgerReport{
		Start:        domain.DateOf(start),
		End:          domain.DateOf(end),
		Transactions: filtered,
		Summary:      Summarize(filtered),
	}, nil
}

// Summarize totals the Income and Expense records. Other categories are ignored.
func Summarize(transactions []domain.Transaction) domain.Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range transactions {
		if !tx.Category.IsReserved() {
			continue
		}
		if tx.Category == domain.CategoryIncome {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}
	}
	return domain.Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		NetSavings:   income.Sub(expense),
	}
}

func filterTransactionsByDate(transactions []domain.Transaction, start, end time.Time) []domain.Transaction {
	start, end = domain.DateOf(start), domain.DateOf(end)
	filtered := make([]domain.Transaction, 0)
	for _, tx := range transactions {
		txDate := domain.DateOf(tx.Date)
		if !txDate.Before(start) && !txDate.After(end) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}
