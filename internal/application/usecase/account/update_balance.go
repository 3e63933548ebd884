package account

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// UpdateBalanceInput represents the input for setting an account balance.
type UpdateBalanceInput struct {
	AccountID int64
	Balance   decimal.Decimal
}

// UpdateBalanceOutput represents the output of a balance update.
// Account is nil when the account is not held locally.
type UpdateBalanceOutput struct {
	Account *entity.Account
}

// UpdateBalanceUseCase sets an account's balance to an absolute value.
type UpdateBalanceUseCase struct {
	service adapter.FinanceService
	state   *state.State
	clock   adapter.Clock
}

// NewUpdateBalanceUseCase creates a new UpdateBalanceUseCase instance.
func NewUpdateBalanceUseCase(service adapter.FinanceService, st *state.State, clock adapter.Clock) *UpdateBalanceUseCase {
	return &UpdateBalanceUseCase{
		service: service,
		state:   st,
		clock:   clock,
	}
}

// Execute updates the balance remotely, then patches only the balance and
// timestamp of the local record from the request. The service's echo is not
// waited for.
func (uc *UpdateBalanceUseCase) Execute(ctx context.Context, input UpdateBalanceInput) (*UpdateBalanceOutput, error) {
	if err := uc.service.UpdateAccountBalance(context.WithoutCancel(ctx), input.AccountID, input.Balance); err != nil {
		opErr := domainerror.NewOperationError(domainerror.OpUpdateAccountBalance, err)
		slog.Info("Balance update failed", "account_id", input.AccountID, "code", opErr.Code, "error", err)
		return nil, opErr
	}

	now := uc.clock.Now()
	output := &UpdateBalanceOutput{}
	uc.state.Accounts.Update(input.AccountID, func(a entity.Account) entity.Account {
		a = a.WithBalance(input.Balance, now)
		// The service has just confirmed this exact value.
		a.Provisional = false
		output.Account = &a
		return a
	})

	return output, nil
}
