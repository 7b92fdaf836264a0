package usecase

import (
	"context"

	"mini-ledger/internal/domain"
)

// TransactionStore defines the durable, append-only record collection.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_store.go -source=interface.go TransactionStore
type TransactionStore interface {
	Initialize(ctx context.Context) error
	Append(ctx context.Context, tx domain.Transaction) error
	GetTransactions(ctx context.Context) ([]domain.Transaction, error)
}
