package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// GoalModel represents the goals table in the database. Deleted goals are
// kept with IsActive set to false.
type GoalModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	UserID        int64           `gorm:"not null;index"`
	GoalName      string          `gorm:"type:varchar(100);not null"`
	GoalType      string          `gorm:"type:varchar(20);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TargetDate    *time.Time
	Priority      string    `gorm:"type:varchar(10);not null;default:'medium'"`
	IsActive      bool      `gorm:"not null;default:true;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	goal := &entity.Goal{
		ID:            m.ID,
		Name:          m.GoalName,
		Type:          entity.GoalType(m.GoalType),
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Priority:      entity.Priority(m.Priority),
		Active:        m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.TargetDate != nil {
		goal.Deadline = *m.TargetDate
	}
	return goal
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(userID int64, goal *entity.Goal) *GoalModel {
	var targetDate *time.Time
	if !goal.Deadline.IsZero() {
		targetDate = &goal.Deadline
	}

	return &GoalModel{
		ID:            goal.ID,
		UserID:        userID,
		GoalName:      goal.Name,
		GoalType:      string(goal.Type),
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    targetDate,
		Priority:      string(goal.Priority),
		IsActive:      goal.Active,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// AllModels lists every model the ledger schema migrates.
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&PlatformModel{},
		&AccountModel{},
		&TransactionModel{},
		&GoalModel{},
	}
}
