package platform

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// CreatePlatformInput represents the input for platform creation.
type CreatePlatformInput struct {
	Draft entity.PlatformDraft
}

// CreatePlatformOutput represents the output of platform creation.
type CreatePlatformOutput struct {
	Platform entity.Platform
}

// CreatePlatformUseCase handles platform creation.
type CreatePlatformUseCase struct {
	service adapter.FinanceService
	state   *state.State
}

// NewCreatePlatformUseCase creates a new CreatePlatformUseCase instance.
func NewCreatePlatformUseCase(service adapter.FinanceService, st *state.State) *CreatePlatformUseCase {
	return &CreatePlatformUseCase{
		service: service,
		state:   st,
	}
}

// Execute creates the platform remotely and appends the server's record.
func (uc *CreatePlatformUseCase) Execute(ctx context.Context, input CreatePlatformInput) (*CreatePlatformOutput, error) {
	platform, err := uc.service.CreatePlatform(context.WithoutCancel(ctx), input.Draft)
	if err != nil {
		opErr := domainerror.NewOperationError(domainerror.OpCreatePlatform, err)
		slog.Info("Platform creation failed", "name", input.Draft.Name, "code", opErr.Code, "error", err)
		return nil, opErr
	}

	uc.state.Platforms.Append(platform)

	return &CreatePlatformOutput{
		Platform: platform,
	}, nil
}
