package adapter

import (
	"context"

	"github.com/finance-tracker/client/internal/application/state"
)

// SnapshotCache keeps the last loaded collections so a restarted client can
// show stale data until its first authoritative fetch completes. Snapshots
// are kept per credential owner.
type SnapshotCache interface {
	Save(ctx context.Context, owner string, snap state.Snapshot) error
	Load(ctx context.Context, owner string) (state.Snapshot, bool, error)
	Clear(ctx context.Context, owner string) error
}
