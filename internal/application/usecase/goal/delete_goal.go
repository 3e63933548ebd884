package goal

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID int64
}

// DeleteGoalUseCase handles goal deletion.
type DeleteGoalUseCase struct {
	service adapter.FinanceService
	state   *state.State
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(service adapter.FinanceService, st *state.State) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		service: service,
		state:   st,
	}
}

// Execute deletes the goal remotely. The local record is removed only after
// the service confirms.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if err := uc.service.DeleteGoal(context.WithoutCancel(ctx), input.GoalID); err != nil {
		opErr := domainerror.NewOperationError(domainerror.OpDeleteGoal, err)
		slog.Info("Goal deletion failed", "goal_id", input.GoalID, "code", opErr.Code, "error", err)
		return opErr
	}

	uc.state.Goals.Remove(input.GoalID)
	return nil
}
