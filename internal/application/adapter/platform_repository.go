package adapter

import (
	"context"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// PlatformRepository defines the interface for platform persistence operations.
// Platforms are shared between users.
type PlatformRepository interface {
	// Create stores a new platform and sets platform.ID.
	Create(ctx context.Context, platform *entity.Platform) error

	// FindByID retrieves a platform by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Platform, error)

	// FindActive retrieves all active platforms ordered by name.
	FindActive(ctx context.Context) ([]entity.Platform, error)
}
