package account

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	AccountID int64
}

// DeleteAccountUseCase handles account deletion.
type DeleteAccountUseCase struct {
	service adapter.FinanceService
	state   *state.State
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(service adapter.FinanceService, st *state.State) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		service: service,
		state:   st,
	}
}

// Execute deletes the account remotely and only then removes it locally.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if err := uc.service.DeleteAccount(context.WithoutCancel(ctx), input.AccountID); err != nil {
		opErr := domainerror.NewOperationError(domainerror.OpDeleteAccount, err)
		slog.Info("Account deletion failed", "account_id", input.AccountID, "code", opErr.Code, "error", err)
		return opErr
	}

	uc.state.Accounts.Remove(input.AccountID)
	return nil
}
