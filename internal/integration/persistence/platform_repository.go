package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
	"github.com/finance-tracker/client/internal/integration/persistence/model"
)

// platformRepository implements the adapter.PlatformRepository interface.
type platformRepository struct {
	db *gorm.DB
}

// NewPlatformRepository creates a new platform repository instance.
func NewPlatformRepository(db *gorm.DB) adapter.PlatformRepository {
	return &platformRepository{
		db: db,
	}
}

// Create creates a new platform in the database.
func (r *platformRepository) Create(ctx context.Context, platform *entity.Platform) error {
	platformModel := model.PlatformFromEntity(platform)
	result := r.db.WithContext(ctx).Create(platformModel)
	if result.Error != nil {
		return result.Error
	}
	platform.ID = platformModel.ID
	return nil
}

// FindByID retrieves a platform by its ID.
func (r *platformRepository) FindByID(ctx context.Context, id int64) (*entity.Platform, error) {
	var platformModel model.PlatformModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&platformModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPlatformNotFound
		}
		return nil, result.Error
	}
	return platformModel.ToEntity(), nil
}

// FindActive retrieves all active platforms ordered by name.
func (r *platformRepository) FindActive(ctx context.Context) ([]entity.Platform, error) {
	var platformModels []model.PlatformModel
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC, id ASC").
		Find(&platformModels)
	if result.Error != nil {
		return nil, result.Error
	}

	platforms := make([]entity.Platform, len(platformModels))
	for i := range platformModels {
		platforms[i] = *platformModels[i].ToEntity()
	}
	return platforms, nil
}
