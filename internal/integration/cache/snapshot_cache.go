// Package cache persists state snapshots in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
)

// snapshotVersion is bumped whenever the encoded layout changes; snapshots
// of another version are ignored.
const snapshotVersion = 1

// SnapshotCache stores the last loaded state as a msgpack blob.
type SnapshotCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	now    func() time.Time
}

var _ adapter.SnapshotCache = (*SnapshotCache)(nil)

// NewSnapshotCache creates a new Redis snapshot cache. A zero ttl keeps
// snapshots until overwritten.
func NewSnapshotCache(client *redis.Client, key string, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		client: client,
		key:    key,
		ttl:    ttl,
		now:    time.Now,
	}
}

// keyFor scopes the snapshot to one credential owner.
func (c *SnapshotCache) keyFor(owner string) string {
	return c.key + ":" + owner
}

// Save encodes and stores the owner's snapshot.
func (c *SnapshotCache) Save(ctx context.Context, owner string, snap state.Snapshot) error {
	payload, err := msgpack.Marshal(toEnvelope(snap, c.now()))
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := c.client.Set(ctx, c.keyFor(owner), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// Load returns the owner's stored snapshot. Missing, outdated or unreadable
// snapshots report false; only Redis failures are errors.
func (c *SnapshotCache) Load(ctx context.Context, owner string) (state.Snapshot, bool, error) {
	payload, err := c.client.Get(ctx, c.keyFor(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return state.Snapshot{}, false, nil
	}
	if err != nil {
		return state.Snapshot{}, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var env envelope
	if err := msgpack.Unmarshal(payload, &env); err != nil || env.Version != snapshotVersion {
		return state.Snapshot{}, false, nil
	}

	snap, err := env.toSnapshot()
	if err != nil {
		return state.Snapshot{}, false, nil
	}
	return snap, true, nil
}

// Clear removes the owner's snapshot.
func (c *SnapshotCache) Clear(ctx context.Context, owner string) error {
	if err := c.client.Del(ctx, c.keyFor(owner)).Err(); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
