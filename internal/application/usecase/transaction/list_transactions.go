// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
)

// DefaultListLimit is how many transactions are fetched when no limit is given.
const DefaultListLimit = 50

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Limit int // Optional, defaults to DefaultListLimit
}

// ListTransactionsUseCase refreshes the transaction collection.
type ListTransactionsUseCase struct {
	service adapter.FinanceService
	state   *state.State
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(service adapter.FinanceService, st *state.State) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		service: service,
		state:   st,
	}
}

// Execute replaces the local transactions with the service's most recent
// ones. On failure the previous transactions are kept and false is returned.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) bool {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	done := uc.state.Loading.Begin()
	defer done()

	transactions, err := uc.service.ListTransactions(context.WithoutCancel(ctx), limit)
	if err != nil {
		slog.Warn("Failed to fetch transactions, keeping previous state", "error", err)
		return false
	}

	uc.state.Transactions.ReplaceAll(transactions)
	return true
}
