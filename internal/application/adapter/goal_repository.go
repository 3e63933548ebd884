package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
// Every method is scoped to the owning user.
type GoalRepository interface {
	// Create stores a new goal and sets goal.ID.
	Create(ctx context.Context, userID int64, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, userID, id int64) (*entity.Goal, error)

	// FindByUserID retrieves the user's active goals.
	FindByUserID(ctx context.Context, userID int64) ([]entity.Goal, error)

	// Update replaces a goal's editable fields.
	Update(ctx context.Context, userID int64, goal *entity.Goal) error

	// UpdateProgress sets a goal's current amount.
	UpdateProgress(ctx context.Context, userID, id int64, current decimal.Decimal) error

	// Deactivate marks a goal inactive (soft delete).
	Deactivate(ctx context.Context, userID, id int64) error
}
