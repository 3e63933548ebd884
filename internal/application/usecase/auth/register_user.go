package auth

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Registration entity.Registration
}

// RegisterUserUseCase creates a user on the service. It does not log in.
type RegisterUserUseCase struct {
	authService adapter.AuthService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(authService adapter.AuthService) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		authService: authService,
	}
}

// Execute performs the registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) error {
	if err := uc.authService.Register(context.WithoutCancel(ctx), input.Registration); err != nil {
		opErr := domainerror.NewOperationError(domainerror.OpRegister, err)
		slog.Info("Registration failed", "email", input.Registration.Email, "code", opErr.Code)
		return opErr
	}
	return nil
}
