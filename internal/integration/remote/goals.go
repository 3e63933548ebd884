package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// ListGoals retrieves the user's active goals.
func (c *Client) ListGoals(ctx context.Context) ([]entity.Goal, error) {
	var response []dto.GoalResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/goals", nil, nil, &response); err != nil {
		return nil, err
	}
	return dto.ToGoalEntities(response), nil
}

// CreateGoal creates a goal and returns the stored record.
func (c *Client) CreateGoal(ctx context.Context, draft entity.GoalDraft) (entity.Goal, error) {
	var response dto.GoalResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/goals", nil, dto.ToGoalRequest(draft), &response); err != nil {
		return entity.Goal{}, err
	}
	return response.ToEntity(), nil
}

// UpdateGoal replaces a goal's editable fields and returns the stored record.
func (c *Client) UpdateGoal(ctx context.Context, goalID int64, draft entity.GoalDraft) (entity.Goal, error) {
	var response dto.GoalResponse
	path := fmt.Sprintf("/api/goals/%d", goalID)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, dto.ToGoalRequest(draft), &response); err != nil {
		return entity.Goal{}, err
	}
	return response.ToEntity(), nil
}

// UpdateGoalProgress sets a goal's current amount to an absolute value.
func (c *Client) UpdateGoalProgress(ctx context.Context, goalID int64, current decimal.Decimal) error {
	path := fmt.Sprintf("/api/goals/%d/progress", goalID)
	return c.doJSON(ctx, http.MethodPut, path, nil, dto.UpdateProgressRequest{CurrentAmount: current}, nil)
}

// DeleteGoal deletes a goal.
func (c *Client) DeleteGoal(ctx context.Context, goalID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/goals/%d", goalID), nil, nil, nil)
}
