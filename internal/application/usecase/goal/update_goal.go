package goal

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// UpdateGoalInput represents the input for a goal edit.
type UpdateGoalInput struct {
	GoalID int64
	Draft  entity.GoalDraft
}

// UpdateGoalOutput represents the output of a goal edit.
type UpdateGoalOutput struct {
	Goal entity.Goal
}

// UpdateGoalUseCase handles general goal edits.
type UpdateGoalUseCase struct {
	service adapter.FinanceService
	state   *state.State
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(service adapter.FinanceService, st *state.State) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		service: service,
		state:   st,
	}
}

// Execute updates the goal remotely and replaces the local record with the
// server-returned value.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.service.UpdateGoal(context.WithoutCancel(ctx), input.GoalID, input.Draft)
	if err != nil {
		opErr := domainerror.NewOperationError(domainerror.OpUpdateGoal, err)
		slog.Info("Goal update failed", "goal_id", input.GoalID, "code", opErr.Code, "error", err)
		return nil, opErr
	}

	if !uc.state.Goals.Replace(goal) {
		slog.Debug("Updated goal is not held locally", "goal_id", goal.ID)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
