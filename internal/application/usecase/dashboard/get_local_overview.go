package dashboard

import (
	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/aggregate"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// GetLocalOverviewUseCase computes the overview from the held collections
// without a remote call.
type GetLocalOverviewUseCase struct {
	state *state.State
	clock adapter.Clock
}

// NewGetLocalOverviewUseCase creates a new GetLocalOverviewUseCase instance.
func NewGetLocalOverviewUseCase(st *state.State, clock adapter.Clock) *GetLocalOverviewUseCase {
	return &GetLocalOverviewUseCase{
		state: st,
		clock: clock,
	}
}

// Execute recomputes the overview on every call.
func (uc *GetLocalOverviewUseCase) Execute() entity.Overview {
	return aggregate.LocalOverview(uc.state.Snapshot(), uc.clock.Now())
}
