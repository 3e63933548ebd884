package goal

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Draft entity.GoalDraft
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal entity.Goal
}

// CreateGoalUseCase handles goal creation.
type CreateGoalUseCase struct {
	service adapter.FinanceService
	state   *state.State
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(service adapter.FinanceService, st *state.State) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		service: service,
		state:   st,
	}
}

// Execute creates the goal remotely and appends the server's record.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	goal, err := uc.service.CreateGoal(context.WithoutCancel(ctx), input.Draft)
	if err != nil {
		opErr := domainerror.NewOperationError(domainerror.OpCreateGoal, err)
		slog.Info("Goal creation failed", "name", input.Draft.Name, "code", opErr.Code, "error", err)
		return nil, opErr
	}

	uc.state.Goals.Append(goal)

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
