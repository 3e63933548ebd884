package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// ActiveGoals returns the goals still marked active.
func ActiveGoals(goals []entity.Goal) []entity.Goal {
	var out []entity.Goal
	for _, g := range goals {
		if g.Active {
			out = append(out, g)
		}
	}
	return out
}

// GoalProgress returns how far a goal is towards its target, in percent.
// Progress past the target is reported as is, not capped.
func GoalProgress(goal entity.Goal) decimal.Decimal {
	if !goal.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
}
