package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
	"github.com/finance-tracker/client/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, userID int64, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(userID, goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	goal.ID = goalModel.ID
	return nil
}

// FindByID retrieves a goal by its ID, active or not.
func (r *goalRepository) FindByID(ctx context.Context, userID, id int64) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves the user's active goals.
func (r *goalRepository) FindByUserID(ctx context.Context, userID int64) ([]entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("id ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = *goalModels[i].ToEntity()
	}
	return goals, nil
}

// Update replaces a goal's editable fields.
func (r *goalRepository) Update(ctx context.Context, userID int64, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(userID, goal)
	return r.updates(ctx, userID, goal.ID, map[string]interface{}{
		"goal_name":     goalModel.GoalName,
		"goal_type":     goalModel.GoalType,
		"target_amount": goalModel.TargetAmount,
		"target_date":   goalModel.TargetDate,
		"priority":      goalModel.Priority,
		"updated_at":    time.Now().UTC(),
	})
}

// UpdateProgress sets a goal's current amount.
func (r *goalRepository) UpdateProgress(ctx context.Context, userID, id int64, current decimal.Decimal) error {
	return r.updates(ctx, userID, id, map[string]interface{}{
		"current_amount": current,
		"updated_at":     time.Now().UTC(),
	})
}

// Deactivate marks a goal inactive (soft delete).
func (r *goalRepository) Deactivate(ctx context.Context, userID, id int64) error {
	return r.updates(ctx, userID, id, map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	})
}

func (r *goalRepository) updates(ctx context.Context, userID, id int64, values map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}
