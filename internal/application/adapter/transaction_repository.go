package adapter

import (
	"context"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// CreateAndApply stores a transaction and applies its balance effect to
	// the account in the same database transaction. It sets transaction.ID.
	CreateAndApply(ctx context.Context, userID int64, transaction *entity.Transaction) error

	// FindRecent retrieves the user's transactions, newest first. A limit of
	// zero or less returns all of them.
	FindRecent(ctx context.Context, userID int64, limit int) ([]entity.Transaction, error)
}
