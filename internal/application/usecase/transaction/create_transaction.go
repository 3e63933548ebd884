package transaction

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Draft entity.TransactionDraft
}

// CreateTransactionOutput represents the output of transaction creation.
// Account is the locally projected account, nil when it is not held.
type CreateTransactionOutput struct {
	Transaction entity.Transaction
	Account     *entity.Account
}

// CreateTransactionUseCase records a transaction and projects its effect on
// the account balance.
type CreateTransactionUseCase struct {
	service adapter.FinanceService
	state   *state.State
	clock   adapter.Clock
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(service adapter.FinanceService, st *state.State, clock adapter.Clock) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		service: service,
		state:   st,
		clock:   clock,
	}
}

// Execute creates the transaction remotely, prepends it, and applies its
// balance effect to the matching local account exactly once, without a
// second call. The projected balance is provisional until the next
// authoritative account fetch replaces it.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transaction, err := uc.service.CreateTransaction(context.WithoutCancel(ctx), input.Draft)
	if err != nil {
		opErr := domainerror.NewOperationError(domainerror.OpCreateTransaction, err)
		slog.Info("Transaction creation failed", "account_id", input.Draft.AccountID, "code", opErr.Code, "error", err)
		return nil, opErr
	}

	uc.state.Transactions.Prepend(transaction)

	output := &CreateTransactionOutput{
		Transaction: transaction,
	}

	effect := entity.BalanceEffect(input.Draft.Type, input.Draft.Amount)
	now := uc.clock.Now()
	uc.state.Accounts.Update(input.Draft.AccountID, func(a entity.Account) entity.Account {
		a = a.WithBalance(a.Balance.Add(effect), now)
		a.Provisional = true
		output.Account = &a
		return a
	})

	return output, nil
}
