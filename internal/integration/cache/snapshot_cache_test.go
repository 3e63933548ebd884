package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
)

func newCache(t *testing.T, ttl time.Duration) (*SnapshotCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSnapshotCache(client, "finance:snapshot", ttl), server
}

func TestSnapshotCache_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	cache, _ := newCache(t, time.Hour)
	updated := time.Date(2025, time.February, 1, 10, 0, 0, 0, time.UTC)
	bank := entity.Platform{ID: 1, Name: "Bank A", Type: entity.PlatformTypeBank, Active: true}
	snap := state.Snapshot{
		Platforms: []entity.Platform{bank},
		Accounts: []entity.Account{
			{ID: 1, Name: "Checking", PlatformID: 1, Platform: &bank, Balance: decimal.RequireFromString("1000.10"), LastUpdated: updated, Provisional: true},
		},
		Transactions: []entity.Transaction{
			{ID: 5, AccountID: 1, Type: entity.TransactionTypeIncome, Amount: decimal.RequireFromString("0.01"), OccurredAt: updated},
		},
		Goals: []entity.Goal{
			{ID: 2, Name: "Trip", TargetAmount: decimal.NewFromInt(900), CurrentAmount: decimal.NewFromInt(100), Priority: entity.PriorityLow},
		},
	}

	require.NoError(t, cache.Save(ctx, "owner-a", snap))
	loaded, ok, err := cache.Load(ctx, "owner-a")

	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, loaded.Accounts, 1)
	account := loaded.Accounts[0]
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("1000.10")))
	assert.True(t, updated.Equal(account.LastUpdated))
	require.NotNil(t, account.Platform)
	assert.Equal(t, "Bank A", account.Platform.Name)
	assert.False(t, account.Provisional, "provisional marking is applied on restore, not stored")
	assert.Equal(t, []entity.Platform{bank}, loaded.Platforms)
	assert.True(t, loaded.Transactions[0].Amount.Equal(decimal.RequireFromString("0.01")))
	assert.Equal(t, "Trip", loaded.Goals[0].Name)
	assert.Equal(t, entity.PriorityLow, loaded.Goals[0].Priority)
}

func TestSnapshotCache_Missing(t *testing.T) {
	cache, _ := newCache(t, 0)

	_, ok, err := cache.Load(context.Background(), "owner-a")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSnapshotCache_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	cache, server := newCache(t, 0)
	require.NoError(t, cache.Save(ctx, "owner-a", state.Snapshot{
		Accounts: []entity.Account{{ID: 1, Name: "A's checking"}},
	}))

	_, ok, err := cache.Load(ctx, "owner-b")
	require.NoError(t, err)
	assert.False(t, ok, "another owner must not see the snapshot")

	assert.True(t, server.Exists("finance:snapshot:owner-a"))
	assert.False(t, server.Exists("finance:snapshot"))
}

func TestSnapshotCache_Clear(t *testing.T) {
	ctx := context.Background()
	cache, _ := newCache(t, 0)
	require.NoError(t, cache.Save(ctx, "owner-a", state.Snapshot{}))
	require.NoError(t, cache.Save(ctx, "owner-b", state.Snapshot{}))

	require.NoError(t, cache.Clear(ctx, "owner-a"))

	_, ok, err := cache.Load(ctx, "owner-a")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = cache.Load(ctx, "owner-b")
	require.NoError(t, err)
	assert.True(t, ok)

	// Clearing a missing snapshot is not an error
	assert.NoError(t, cache.Clear(ctx, "owner-c"))
}

func TestSnapshotCache_Expires(t *testing.T) {
	ctx := context.Background()
	cache, server := newCache(t, time.Minute)
	require.NoError(t, cache.Save(ctx, "owner-a", state.Snapshot{}))

	server.FastForward(2 * time.Minute)
	_, ok, err := cache.Load(ctx, "owner-a")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSnapshotCache_IgnoresGarbage(t *testing.T) {
	cache, server := newCache(t, 0)
	require.NoError(t, server.Set("finance:snapshot:owner-a", "not msgpack"))

	_, ok, err := cache.Load(context.Background(), "owner-a")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSnapshotCache_RedisFailure(t *testing.T) {
	cache, server := newCache(t, 0)
	server.Close()

	_, _, err := cache.Load(context.Background(), "owner-a")
	assert.Error(t, err)
	assert.Error(t, cache.Save(context.Background(), "owner-a", state.Snapshot{}))
	assert.Error(t, cache.Clear(context.Background(), "owner-a"))
}
