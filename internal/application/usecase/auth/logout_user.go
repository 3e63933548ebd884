package auth

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
)

// LogoutUserUseCase clears the session and everything held for its user.
type LogoutUserUseCase struct {
	session adapter.SessionManager
	state   *state.State
	cache   adapter.SnapshotCache
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance. cache may be
// nil when snapshots are disabled.
func NewLogoutUserUseCase(session adapter.SessionManager, st *state.State, cache adapter.SnapshotCache) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		session: session,
		state:   st,
		cache:   cache,
	}
}

// Execute drops the user's snapshot, clears the current credential including
// its persisted copy, and empties the in-memory state.
func (uc *LogoutUserUseCase) Execute(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)

	if owner, ok := uc.session.Owner(); ok && uc.cache != nil {
		if err := uc.cache.Clear(ctx, owner); err != nil {
			slog.Warn("Failed to clear state snapshot", "error", err)
		}
	}

	err := uc.session.Logout(ctx)
	uc.state.Reset()
	return err
}
