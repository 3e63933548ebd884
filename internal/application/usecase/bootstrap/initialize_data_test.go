package bootstrap

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/application/usecase/goal"
	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/testutil"
)

type memoryCache struct {
	mu    sync.Mutex
	snaps map[string]state.Snapshot
	saves int
}

func (c *memoryCache) Save(ctx context.Context, owner string, snap state.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snaps == nil {
		c.snaps = make(map[string]state.Snapshot)
	}
	c.snaps[owner] = snap
	c.saves++
	return nil
}

func (c *memoryCache) Load(ctx context.Context, owner string) (state.Snapshot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap, ok := c.snaps[owner]
	return snap, ok, nil
}

func (c *memoryCache) Clear(ctx context.Context, owner string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snaps, owner)
	return nil
}

// fixedOwner is a credential owner; the empty owner means logged out.
type fixedOwner string

func (o fixedOwner) Owner() (string, bool) { return string(o), o != "" }

const jane fixedOwner = "jane"

var (
	platforms    = []entity.Platform{{ID: 1, Name: "Bank A"}}
	accounts     = []entity.Account{{ID: 1, PlatformID: 1, Balance: decimal.NewFromInt(1000)}, {ID: 2, PlatformID: 1, Balance: decimal.NewFromInt(5000)}}
	transactions = []entity.Transaction{{ID: 7, AccountID: 1, Type: entity.TransactionTypeIncome, Amount: decimal.NewFromInt(200)}}
	goals        = []entity.Goal{{ID: 3, Name: "Trip", TargetAmount: decimal.NewFromInt(900)}}
)

func okService() *testutil.FinanceService {
	return &testutil.FinanceService{
		ListPlatformsFn:    func(ctx context.Context) ([]entity.Platform, error) { return platforms, nil },
		ListAccountsFn:     func(ctx context.Context) ([]entity.Account, error) { return accounts, nil },
		ListTransactionsFn: func(ctx context.Context, limit int) ([]entity.Transaction, error) { return transactions, nil },
		ListGoalsFn:        func(ctx context.Context) ([]entity.Goal, error) { return goals, nil },
		GetOverviewFn: func(ctx context.Context) (entity.Overview, error) {
			return entity.Overview{TotalBalance: decimal.NewFromInt(6000)}, nil
		},
	}
}

func TestInitializeDataUseCase_LoadsEverything(t *testing.T) {
	st := state.New()
	cache := &memoryCache{}

	output := NewInitializeDataUseCase(okService(), st, cache, jane).Execute(context.Background(), InitializeDataInput{})

	assert.True(t, output.Complete())
	assert.False(t, output.Restored)
	assert.Equal(t, 1, st.Platforms.Len())
	assert.Equal(t, 2, st.Accounts.Len())
	assert.Equal(t, 1, st.Transactions.Len())
	assert.Equal(t, 1, st.Goals.Len())
	_, ok := st.ServerOverview()
	assert.True(t, ok)
	assert.False(t, st.Loading.IsLoading())
	assert.Equal(t, 1, cache.saves)
}

func TestInitializeDataUseCase_PartialFailureKeepsOtherCollections(t *testing.T) {
	st := state.New()
	st.Goals.ReplaceAll([]entity.Goal{{ID: 99, Name: "Old"}})
	service := okService()
	service.ListGoalsFn = func(ctx context.Context) ([]entity.Goal, error) {
		return nil, errors.New("timeout")
	}
	cache := &memoryCache{}

	output := NewInitializeDataUseCase(service, st, cache, jane).Execute(context.Background(), InitializeDataInput{})

	assert.False(t, output.Complete())
	assert.False(t, output.Goals)
	assert.True(t, output.Accounts)
	assert.Equal(t, 2, st.Accounts.Len())
	goals := st.Goals.All()
	require.Len(t, goals, 1)
	assert.Equal(t, "Old", goals[0].Name)
	assert.Zero(t, cache.saves)
}

func TestInitializeDataUseCase_LoadingUntilAllSettle(t *testing.T) {
	st := state.New()
	release := map[string]chan struct{}{
		"accounts":     make(chan struct{}),
		"transactions": make(chan struct{}),
		"goals":        make(chan struct{}),
		"platforms":    make(chan struct{}),
		"overview":     make(chan struct{}),
	}
	var started sync.WaitGroup
	started.Add(len(release))
	wait := func(name string) {
		started.Done()
		<-release[name]
	}
	service := &testutil.FinanceService{
		ListPlatformsFn: func(ctx context.Context) ([]entity.Platform, error) {
			wait("platforms")
			return platforms, nil
		},
		ListAccountsFn: func(ctx context.Context) ([]entity.Account, error) {
			wait("accounts")
			return accounts, nil
		},
		ListTransactionsFn: func(ctx context.Context, limit int) ([]entity.Transaction, error) {
			wait("transactions")
			return transactions, nil
		},
		ListGoalsFn: func(ctx context.Context) ([]entity.Goal, error) {
			wait("goals")
			return goals, nil
		},
		GetOverviewFn: func(ctx context.Context) (entity.Overview, error) {
			wait("overview")
			return entity.Overview{}, nil
		},
	}

	finished := make(chan *InitializeDataOutput)
	go func() {
		finished <- NewInitializeDataUseCase(service, st, nil, nil).Execute(context.Background(), InitializeDataInput{})
	}()
	started.Wait()
	assert.True(t, st.Loading.IsLoading())

	close(release["accounts"])
	require.Eventually(t, func() bool { return st.Accounts.Len() == 2 }, time.Second, time.Millisecond)
	assert.True(t, st.Loading.IsLoading(), "loading must stay true while other loads are in flight")

	for _, name := range []string{"overview", "goals", "platforms"} {
		close(release[name])
	}
	assert.True(t, st.Loading.IsLoading())

	close(release["transactions"])
	output := <-finished
	assert.True(t, output.Complete())
	assert.False(t, st.Loading.IsLoading())
}

func TestInitializeDataUseCase_WarmStartIsReplacedByFetch(t *testing.T) {
	st := state.New()
	cache := &memoryCache{}
	require.NoError(t, cache.Save(context.Background(), string(jane), state.Snapshot{
		Accounts: []entity.Account{{ID: 1, Balance: decimal.NewFromInt(1)}},
		Goals:    []entity.Goal{{ID: 50, Name: "Cached"}},
	}))
	service := okService()
	service.ListGoalsFn = func(ctx context.Context) ([]entity.Goal, error) {
		return nil, errors.New("unavailable")
	}

	output := NewInitializeDataUseCase(service, st, cache, jane).Execute(context.Background(), InitializeDataInput{})

	assert.True(t, output.Restored)
	account, _ := st.Accounts.Find(1)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(1000)))
	assert.False(t, account.Provisional)

	cached, found := st.Goals.Find(50)
	require.True(t, found, "cached goals stay when their fetch fails")
	assert.Equal(t, "Cached", cached.Name)
}

func TestInitializeDataUseCase_PassesTransactionLimit(t *testing.T) {
	service := okService()
	service.ListTransactionsFn = func(ctx context.Context, limit int) ([]entity.Transaction, error) {
		assert.Equal(t, 20, limit)
		return transactions, nil
	}

	NewInitializeDataUseCase(service, state.New(), nil, nil).Execute(context.Background(), InitializeDataInput{TransactionLimit: 20})

	assert.Equal(t, 1, service.Calls("ListTransactions"))
}

func TestInitializeDataUseCase_RefreshNeverRestoresDeletedRecords(t *testing.T) {
	ctx := context.Background()
	st := state.New()
	cache := &memoryCache{}
	service := okService()
	service.DeleteGoalFn = func(ctx context.Context, goalID int64) error { return nil }
	load := NewInitializeDataUseCase(service, st, cache, jane)

	require.True(t, load.Execute(ctx, InitializeDataInput{}).Complete())
	require.NoError(t, goal.NewDeleteGoalUseCase(service, st).Execute(ctx, goal.DeleteGoalInput{GoalID: 3}))
	require.Zero(t, st.Goals.Len())

	// The next refresh tick fails to fetch goals
	service.ListGoalsFn = func(ctx context.Context) ([]entity.Goal, error) {
		return nil, errors.New("unavailable")
	}
	output := load.Execute(ctx, InitializeDataInput{})

	assert.False(t, output.Restored)
	assert.False(t, output.Goals)
	assert.Zero(t, st.Goals.Len(), "the deleted goal must not come back from the snapshot")
}

func TestInitializeDataUseCase_RestoresOnlyOnFirstRun(t *testing.T) {
	ctx := context.Background()
	cache := &memoryCache{}
	require.NoError(t, cache.Save(ctx, string(jane), state.Snapshot{
		Goals: []entity.Goal{{ID: 50, Name: "Cached"}},
	}))
	st := state.New()
	service := okService()
	service.ListGoalsFn = func(ctx context.Context) ([]entity.Goal, error) { return nil, nil }
	load := NewInitializeDataUseCase(service, st, cache, jane)

	first := load.Execute(ctx, InitializeDataInput{})
	assert.True(t, first.Restored)
	assert.Zero(t, st.Goals.Len(), "an empty fetch replaces the cached goals")

	service.ListGoalsFn = func(ctx context.Context) ([]entity.Goal, error) {
		return nil, errors.New("unavailable")
	}
	second := load.Execute(ctx, InitializeDataInput{})
	assert.False(t, second.Restored)
	assert.Zero(t, st.Goals.Len())
}

func TestInitializeDataUseCase_FailedFetchAfterRestoreKeepsCachedRecords(t *testing.T) {
	ctx := context.Background()
	cache := &memoryCache{}
	require.NoError(t, cache.Save(ctx, string(jane), state.Snapshot{
		Accounts: []entity.Account{{ID: 1, Balance: decimal.NewFromInt(1000)}},
	}))
	st := state.New()

	output := NewInitializeDataUseCase(&testutil.FinanceService{}, st, cache, jane).Execute(ctx, InitializeDataInput{})

	assert.True(t, output.Restored)
	assert.False(t, output.Accounts)
	account, found := st.Accounts.Find(1)
	require.True(t, found)
	assert.True(t, account.Provisional, "cached balances are unconfirmed")
	assert.Equal(t, 1, cache.saves, "a failed load does not overwrite the snapshot")
}

func TestInitializeDataUseCase_SnapshotScopedToOwner(t *testing.T) {
	ctx := context.Background()
	cache := &memoryCache{}
	require.True(t, NewInitializeDataUseCase(okService(), state.New(), cache, jane).Execute(ctx, InitializeDataInput{}).Complete())

	// Another user on a fresh state, against a service that rejects everything
	st := state.New()
	output := NewInitializeDataUseCase(&testutil.FinanceService{}, st, cache, fixedOwner("john")).Execute(ctx, InitializeDataInput{})

	assert.False(t, output.Restored)
	assert.Zero(t, st.Accounts.Len())
	assert.Zero(t, st.Goals.Len())
}

func TestInitializeDataUseCase_NoSnapshotWithoutCredential(t *testing.T) {
	ctx := context.Background()
	cache := &memoryCache{}
	require.NoError(t, cache.Save(ctx, string(jane), state.Snapshot{
		Accounts: []entity.Account{{ID: 1}},
	}))
	st := state.New()

	output := NewInitializeDataUseCase(okService(), st, cache, fixedOwner("")).Execute(ctx, InitializeDataInput{})

	assert.False(t, output.Restored)
	assert.Equal(t, 1, cache.saves, "nothing is saved without an owner")
}
