package adapter

import (
	"context"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations
// of the ledger service.
type UserRepository interface {
	// Create stores a new user with its password hash and sets user.ID.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a user and their password hash by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, string, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
