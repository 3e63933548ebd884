// Package account contains account-related use cases.
package account

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
)

// ListAccountsUseCase refreshes the account collection from the service.
type ListAccountsUseCase struct {
	service adapter.FinanceService
	state   *state.State
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(service adapter.FinanceService, st *state.State) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		service: service,
		state:   st,
	}
}

// Execute performs an authoritative fetch of the accounts. The fetched list
// replaces every local account, including provisional balances.
// On failure the previous accounts are kept and false is returned.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) bool {
	done := uc.state.Loading.Begin()
	defer done()

	accounts, err := uc.service.ListAccounts(context.WithoutCancel(ctx))
	if err != nil {
		slog.Warn("Failed to fetch accounts, keeping previous state", "error", err)
		return false
	}

	uc.state.Accounts.ReplaceAll(accounts)
	return true
}
