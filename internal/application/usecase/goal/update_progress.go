package goal

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// UpdateProgressInput represents the input for setting a goal's progress.
type UpdateProgressInput struct {
	GoalID        int64
	CurrentAmount decimal.Decimal
}

// UpdateProgressOutput represents the output of a progress update.
// Goal is nil when the goal is not held locally.
type UpdateProgressOutput struct {
	Goal *entity.Goal
}

// UpdateProgressUseCase sets a goal's current amount to an absolute value.
type UpdateProgressUseCase struct {
	service adapter.FinanceService
	state   *state.State
	clock   adapter.Clock
}

// NewUpdateProgressUseCase creates a new UpdateProgressUseCase instance.
func NewUpdateProgressUseCase(service adapter.FinanceService, st *state.State, clock adapter.Clock) *UpdateProgressUseCase {
	return &UpdateProgressUseCase{
		service: service,
		state:   st,
		clock:   clock,
	}
}

// Execute updates the progress remotely, then patches only the current
// amount and timestamp of the local goal from the request.
func (uc *UpdateProgressUseCase) Execute(ctx context.Context, input UpdateProgressInput) (*UpdateProgressOutput, error) {
	if err := uc.service.UpdateGoalProgress(context.WithoutCancel(ctx), input.GoalID, input.CurrentAmount); err != nil {
		opErr := domainerror.NewOperationError(domainerror.OpUpdateGoalProgress, err)
		slog.Info("Goal progress update failed", "goal_id", input.GoalID, "code", opErr.Code, "error", err)
		return nil, opErr
	}

	now := uc.clock.Now()
	output := &UpdateProgressOutput{}
	uc.state.Goals.Update(input.GoalID, func(g entity.Goal) entity.Goal {
		g = g.WithProgress(input.CurrentAmount, now)
		output.Goal = &g
		return g
	})

	return output, nil
}
