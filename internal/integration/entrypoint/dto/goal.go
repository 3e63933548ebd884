package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// GoalRequest represents the request body for goal creation and update.
type GoalRequest struct {
	GoalName     string          `json:"goal_name" binding:"required,min=1,max=100"`
	GoalType     string          `json:"goal_type" binding:"required,oneof=savings debt_reduction investment"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	TargetDate   Timestamp       `json:"target_date"`
	Priority     string          `json:"priority" binding:"omitempty,oneof=high medium low"`
}

// UpdateProgressRequest represents the request body for a progress update.
type UpdateProgressRequest struct {
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	GoalName      string          `json:"goal_name"`
	GoalType      string          `json:"goal_type"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    Timestamp       `json:"target_date"`
	Priority      string          `json:"priority"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     Timestamp       `json:"created_at"`
}

// ToGoalRequest converts a draft to its request body.
func ToGoalRequest(draft entity.GoalDraft) GoalRequest {
	priority := draft.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	return GoalRequest{
		GoalName:     draft.Name,
		GoalType:     string(draft.Type),
		TargetAmount: draft.TargetAmount,
		TargetDate:   NewTimestamp(draft.Deadline),
		Priority:     string(priority),
	}
}

// ToEntity converts the response to a domain Goal. The service does not
// report an update time, so UpdatedAt starts at CreatedAt.
func (r GoalResponse) ToEntity() entity.Goal {
	return entity.Goal{
		ID:            r.ID,
		Name:          r.GoalName,
		Type:          entity.GoalType(r.GoalType),
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Deadline:      r.TargetDate.Time,
		Priority:      entity.Priority(r.Priority),
		Active:        r.IsActive,
		CreatedAt:     r.CreatedAt.Time,
		UpdatedAt:     r.CreatedAt.Time,
	}
}

// ToGoalResponse converts a domain Goal to its response.
func ToGoalResponse(g entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID,
		GoalName:      g.Name,
		GoalType:      string(g.Type),
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    NewTimestamp(g.Deadline),
		Priority:      string(g.Priority),
		IsActive:      g.Active,
		CreatedAt:     NewTimestamp(g.CreatedAt),
	}
}

// ToGoalEntities converts a list response.
func ToGoalEntities(responses []GoalResponse) []entity.Goal {
	goals := make([]entity.Goal, len(responses))
	for i, r := range responses {
		goals[i] = r.ToEntity()
	}
	return goals
}
