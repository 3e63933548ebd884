package dependency

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/client/config"
	"github.com/finance-tracker/client/internal/application/usecase/account"
	"github.com/finance-tracker/client/internal/application/usecase/auth"
	"github.com/finance-tracker/client/internal/application/usecase/bootstrap"
	"github.com/finance-tracker/client/internal/application/usecase/transaction"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
	"github.com/finance-tracker/client/internal/integration/persistence"
)

// newTestServer runs a ledger service over HTTP and points cfg at it.
func newTestServer(t *testing.T, cfg *config.Config) {
	t.Helper()

	_, engine := newTestLedger(t, cfg)
	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 5 * time.Second
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClient_EndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	newTestServer(t, cfg)

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()

	// Nothing loads without a session
	output := client.InitializeData.Execute(ctx, bootstrap.InitializeDataInput{})
	assert.True(t, output.Platforms)
	assert.False(t, output.Accounts)

	require.NoError(t, client.Register.Execute(ctx, auth.RegisterUserInput{
		Registration: entity.Registration{Email: "jane@example.com", FullName: "Jane", Password: "password123"},
	}))

	_, err = client.Login.Execute(ctx, auth.LoginUserInput{Email: "jane@example.com", Password: "nope-nope"})
	var opErr *domainerror.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, domainerror.ErrCodeUnauthorized, opErr.Code)

	login, err := client.Login.Execute(ctx, auth.LoginUserInput{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", login.User.Email)

	created, err := client.CreateAccount.Execute(ctx, account.CreateAccountInput{Draft: entity.AccountDraft{
		Name:       "Checking",
		Type:       entity.AccountTypeChecking,
		Number:     "1234",
		PlatformID: 1,
		Balance:    decimal.NewFromInt(1000),
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, client.State.Accounts.Len())

	tx, err := client.CreateTransaction.Execute(ctx, transaction.CreateTransactionInput{Draft: entity.TransactionDraft{
		AccountID:  created.Account.ID,
		Type:       entity.TransactionTypeExpense,
		Category:   "food",
		Amount:     decimal.NewFromInt(250),
		OccurredAt: time.Now(),
	}})
	require.NoError(t, err)
	require.NotNil(t, tx.Account)
	assert.True(t, decimal.NewFromInt(750).Equal(tx.Account.Balance))

	// A full reload agrees with the local projection
	output = client.InitializeData.Execute(ctx, bootstrap.InitializeDataInput{})
	require.True(t, output.Complete())

	held, ok := client.State.Accounts.Find(created.Account.ID)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(750).Equal(held.Balance), held.Balance.String())

	server, ok := client.State.ServerOverview()
	require.True(t, ok)
	local := client.GetLocalOverview.Execute()
	assert.True(t, server.TotalBalance.Equal(local.TotalBalance))
	assert.True(t, server.MonthlyExpenses.Equal(local.MonthlyExpenses))
	assert.True(t, server.SavingsRate.Equal(local.SavingsRate))

	require.NoError(t, client.Logout.Execute(ctx))
	_, err = client.CurrentUser.Execute(ctx)
	assert.Error(t, err)
}

func TestClient_RedisSessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	newTestServer(t, cfg)
	registerAndLoginOver(t, cfg)

	cfg.Session.Store = "redis"
	rdb := newTestRedis(t)

	first, err := NewClient(ctx, cfg, WithRedisClient(rdb))
	require.NoError(t, err)
	_, err = first.Login.Execute(ctx, auth.LoginUserInput{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Close leaves a caller-supplied client open
	require.NoError(t, rdb.Ping(ctx).Err())

	second, err := NewClient(ctx, cfg, WithRedisClient(rdb))
	require.NoError(t, err)
	token, ok := second.Session.Token()
	require.True(t, ok)
	assert.NotEmpty(t, token)

	me, err := second.CurrentUser.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", me.User.Email)
}

func TestClient_SnapshotWarmStart(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig()
	newTestServer(t, cfg)
	registerAndLoginOver(t, cfg)

	cfg.Snapshot.Enabled = true
	cfg.Session.Store = "redis"
	rdb := newTestRedis(t)

	first, err := NewClient(ctx, cfg, WithRedisClient(rdb))
	require.NoError(t, err)
	_, err = first.Login.Execute(ctx, auth.LoginUserInput{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)
	output := first.InitializeData.Execute(ctx, bootstrap.InitializeDataInput{})
	require.True(t, output.Complete())
	assert.False(t, output.Restored)

	// The restarted client picks up the persisted session and its snapshot
	second, err := NewClient(ctx, cfg, WithRedisClient(rdb))
	require.NoError(t, err)
	output = second.InitializeData.Execute(ctx, bootstrap.InitializeDataInput{})
	assert.True(t, output.Restored)
	assert.True(t, output.Complete())
	assert.Equal(t, len(persistence.DefaultPlatforms), second.State.Platforms.Len())

	// Logging out drops the snapshot, so a later client has nothing to restore
	require.NoError(t, second.Logout.Execute(ctx))
	assert.Zero(t, second.State.Platforms.Len())
	require.NoError(t, second.Close())

	third, err := NewClient(ctx, cfg, WithRedisClient(rdb))
	require.NoError(t, err)
	defer third.Close()
	_, err = third.Login.Execute(ctx, auth.LoginUserInput{Email: "jane@example.com", Password: "password123"})
	require.NoError(t, err)
	keys, err := rdb.Keys(ctx, cfg.Snapshot.Key+":*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestNewClient_RedisUnavailable(t *testing.T) {
	cfg := newTestConfig()
	cfg.Session.Store = "redis"
	cfg.Redis.URL = "redis://127.0.0.1:1/0"

	_, err := NewClient(context.Background(), cfg)
	assert.Error(t, err)
}

// registerAndLoginOver registers the standard test user through a throwaway
// client.
func registerAndLoginOver(t *testing.T, cfg *config.Config) {
	t.Helper()

	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Register.Execute(context.Background(), auth.RegisterUserInput{
		Registration: entity.Registration{Email: "jane@example.com", FullName: "Jane", Password: "password123"},
	}))
}
