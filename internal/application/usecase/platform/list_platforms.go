// Package platform contains platform-related use cases.
package platform

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
)

// ListPlatformsUseCase refreshes the platform collection.
type ListPlatformsUseCase struct {
	service adapter.FinanceService
	state   *state.State
}

// NewListPlatformsUseCase creates a new ListPlatformsUseCase instance.
func NewListPlatformsUseCase(service adapter.FinanceService, st *state.State) *ListPlatformsUseCase {
	return &ListPlatformsUseCase{
		service: service,
		state:   st,
	}
}

// Execute replaces the local platforms with the service's. On failure the
// previous platforms are kept and false is returned.
func (uc *ListPlatformsUseCase) Execute(ctx context.Context) bool {
	done := uc.state.Loading.Begin()
	defer done()

	platforms, err := uc.service.ListPlatforms(context.WithoutCancel(ctx))
	if err != nil {
		slog.Warn("Failed to fetch platforms, keeping previous state", "error", err)
		return false
	}

	uc.state.Platforms.ReplaceAll(platforms)
	return true
}
