// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	User entity.User
}

// LoginUserUseCase exchanges credentials for a session.
type LoginUserUseCase struct {
	authService adapter.AuthService
	session     adapter.SessionManager
	state       *state.State
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(authService adapter.AuthService, session adapter.SessionManager, st *state.State) *LoginUserUseCase {
	return &LoginUserUseCase{
		authService: authService,
		session:     session,
		state:       st,
	}
}

// Execute logs in, stores the token in the session, and loads the user it
// belongs to. If the user cannot be loaded the session is cleared again.
// Logging in as someone else empties the state held for the previous user.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	ctx = context.WithoutCancel(ctx)

	token, err := uc.authService.Login(ctx, input.Email, input.Password)
	if err != nil {
		opErr := domainerror.NewOperationError(domainerror.OpLogin, err)
		slog.Info("Login failed", "email", input.Email, "code", opErr.Code)
		return nil, opErr
	}

	previous, _ := uc.session.Owner()
	if err := uc.session.Login(ctx, token); err != nil {
		return nil, domainerror.NewOperationError(domainerror.OpLogin, err)
	}
	if current, _ := uc.session.Owner(); current != previous {
		uc.state.Reset()
	}

	user, err := uc.authService.CurrentUser(ctx)
	if err != nil {
		if logoutErr := uc.session.Logout(ctx); logoutErr != nil {
			slog.Warn("Failed to clear session", "error", logoutErr)
		}
		return nil, domainerror.NewOperationError(domainerror.OpLogin, err)
	}

	return &LoginUserOutput{
		User: user,
	}, nil
}
