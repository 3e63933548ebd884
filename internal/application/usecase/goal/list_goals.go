// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
)

// ListGoalsUseCase refreshes the goal collection.
type ListGoalsUseCase struct {
	service adapter.FinanceService
	state   *state.State
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(service adapter.FinanceService, st *state.State) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		service: service,
		state:   st,
	}
}

// Execute replaces the local goals with the service's. On failure the
// previous goals are kept and false is returned.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) bool {
	done := uc.state.Loading.Begin()
	defer done()

	goals, err := uc.service.ListGoals(context.WithoutCancel(ctx))
	if err != nil {
		slog.Warn("Failed to fetch goals, keeping previous state", "error", err)
		return false
	}

	uc.state.Goals.ReplaceAll(goals)
	return true
}
