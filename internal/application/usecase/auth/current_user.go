package auth

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// CurrentUserOutput represents the user the session belongs to.
type CurrentUserOutput struct {
	User entity.User
}

// CurrentUserUseCase loads the user behind the current session.
type CurrentUserUseCase struct {
	authService adapter.AuthService
	session     adapter.SessionManager
}

// NewCurrentUserUseCase creates a new CurrentUserUseCase instance.
func NewCurrentUserUseCase(authService adapter.AuthService, session adapter.SessionManager) *CurrentUserUseCase {
	return &CurrentUserUseCase{
		authService: authService,
		session:     session,
	}
}

// Execute returns the current user. A session whose user cannot be loaded
// is treated as stale and cleared.
func (uc *CurrentUserUseCase) Execute(ctx context.Context) (*CurrentUserOutput, error) {
	ctx = context.WithoutCancel(ctx)

	user, err := uc.authService.CurrentUser(ctx)
	if err != nil {
		slog.Info("Failed to load current user, logging out", "error", err)
		if logoutErr := uc.session.Logout(ctx); logoutErr != nil {
			slog.Warn("Failed to clear session", "error", logoutErr)
		}
		return nil, domainerror.NewOperationError(domainerror.OpCurrentUser, err)
	}

	return &CurrentUserOutput{
		User: user,
	}, nil
}
