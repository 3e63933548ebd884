package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType represents what a financial goal is working towards.
type GoalType string

const (
	GoalTypeSavings       GoalType = "savings"
	GoalTypeDebtReduction GoalType = "debt_reduction"
	GoalTypeInvestment    GoalType = "investment"
)

// Priority represents the priority of a goal.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Goal represents a financial goal with a target and current progress.
// CurrentAmount may exceed TargetAmount; the client does not enforce it.
type Goal struct {
	ID            int64
	Name          string
	Type          GoalType // the goal's category, "goal_type" on the wire
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	Priority      Priority
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Identity returns the goal ID.
func (g Goal) Identity() int64 {
	return g.ID
}

// WithProgress returns a copy of the goal with the given current amount and a
// refreshed UpdatedAt timestamp.
func (g Goal) WithProgress(current decimal.Decimal, at time.Time) Goal {
	g.CurrentAmount = current
	g.UpdatedAt = at
	return g
}

// GoalDraft holds the creatable and updatable fields of a goal.
type GoalDraft struct {
	Name         string
	Type         GoalType
	TargetAmount decimal.Decimal
	Deadline     time.Time
	Priority     Priority
}
