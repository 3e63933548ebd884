package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
// Every method is scoped to the owning user.
type AccountRepository interface {
	// Create stores a new account and sets account.ID.
	Create(ctx context.Context, userID int64, account *entity.Account) error

	// FindByID retrieves an account with its platform.
	FindByID(ctx context.Context, userID, id int64) (*entity.Account, error)

	// FindActive retrieves the user's active accounts with their platforms.
	FindActive(ctx context.Context, userID int64) ([]entity.Account, error)

	// UpdateBalance sets an account's balance to an absolute value.
	UpdateBalance(ctx context.Context, userID, id int64, balance decimal.Decimal) error

	// Delete removes an account together with its transactions.
	Delete(ctx context.Context, userID, id int64) error
}
