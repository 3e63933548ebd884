package account

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Draft entity.AccountDraft
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account entity.Account
}

// CreateAccountUseCase handles account creation.
type CreateAccountUseCase struct {
	service adapter.FinanceService
	state   *state.State
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(service adapter.FinanceService, st *state.State) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		service: service,
		state:   st,
	}
}

// Execute creates the account remotely and appends the server's record.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	account, err := uc.service.CreateAccount(context.WithoutCancel(ctx), input.Draft)
	if err != nil {
		opErr := domainerror.NewOperationError(domainerror.OpCreateAccount, err)
		slog.Info("Account creation failed", "code", opErr.Code, "error", err)
		return nil, opErr
	}

	uc.state.Accounts.Append(account)

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
