package adapter

import (
	"context"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// AuthService defines the service's authentication endpoints.
type AuthService interface {
	// Login exchanges credentials for an access token.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates a new user.
	Register(ctx context.Context, registration entity.Registration) error

	// CurrentUser retrieves the user the current credential belongs to.
	CurrentUser(ctx context.Context) (entity.User, error)
}
