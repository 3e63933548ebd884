package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/client/config"
	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/application/usecase/account"
	"github.com/finance-tracker/client/internal/application/usecase/auth"
	"github.com/finance-tracker/client/internal/application/usecase/bootstrap"
	"github.com/finance-tracker/client/internal/application/usecase/dashboard"
	"github.com/finance-tracker/client/internal/application/usecase/goal"
	"github.com/finance-tracker/client/internal/application/usecase/platform"
	"github.com/finance-tracker/client/internal/application/usecase/transaction"
	"github.com/finance-tracker/client/internal/infra/db"
	"github.com/finance-tracker/client/internal/integration/cache"
	"github.com/finance-tracker/client/internal/integration/remote"
	"github.com/finance-tracker/client/internal/integration/session"
)

// Client holds the finance client: its state, session, remote accessor and
// every operation over them.
type Client struct {
	Config  *config.Config
	State   *state.State
	Session *session.Session
	Remote  *remote.Client

	// Accounts
	ListAccounts  *account.ListAccountsUseCase
	CreateAccount *account.CreateAccountUseCase
	UpdateBalance *account.UpdateBalanceUseCase
	DeleteAccount *account.DeleteAccountUseCase

	// Transactions
	ListTransactions  *transaction.ListTransactionsUseCase
	CreateTransaction *transaction.CreateTransactionUseCase

	// Goals
	ListGoals      *goal.ListGoalsUseCase
	CreateGoal     *goal.CreateGoalUseCase
	UpdateGoal     *goal.UpdateGoalUseCase
	UpdateProgress *goal.UpdateProgressUseCase
	DeleteGoal     *goal.DeleteGoalUseCase

	// Platforms
	ListPlatforms  *platform.ListPlatformsUseCase
	CreatePlatform *platform.CreatePlatformUseCase

	// Dashboard
	GetOverview       *dashboard.GetOverviewUseCase
	GetMonthlyMetrics *dashboard.GetMonthlyMetricsUseCase
	GetLocalOverview  *dashboard.GetLocalOverviewUseCase

	// Auth
	Login       *auth.LoginUserUseCase
	Register    *auth.RegisterUserUseCase
	CurrentUser *auth.CurrentUserUseCase
	Logout      *auth.LogoutUserUseCase

	InitializeData *bootstrap.InitializeDataUseCase

	redis     *redis.Client
	ownsRedis bool
}

// ClientOption customizes NewClient.
type ClientOption func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	redis      *redis.Client
	clock      adapter.Clock
}

// WithHTTPClient sets the HTTP client used for service calls.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithRedisClient supplies the Redis client instead of connecting to
// cfg.Redis. The caller keeps ownership of it.
func WithRedisClient(client *redis.Client) ClientOption {
	return func(o *clientOptions) {
		o.redis = client
	}
}

// WithClock sets the clock used for local timestamps and the local overview.
func WithClock(clock adapter.Clock) ClientOption {
	return func(o *clientOptions) {
		o.clock = clock
	}
}

// NewClient wires the finance client. Redis is connected only when the
// session store or the snapshot cache needs it. A persisted credential is
// restored before NewClient returns.
func NewClient(ctx context.Context, cfg *config.Config, opts ...ClientOption) (*Client, error) {
	options := clientOptions{clock: adapter.SystemClock{}}
	for _, opt := range opts {
		opt(&options)
	}

	c := &Client{
		Config: cfg,
		State:  state.New(),
		redis:  options.redis,
	}

	needsRedis := cfg.Session.Store == "redis" || cfg.Snapshot.Enabled
	if needsRedis && c.redis == nil {
		client, err := db.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.redis = client
		c.ownsRedis = true
	}

	// Session
	var store adapter.TokenStore = &session.MemoryTokenStore{}
	if cfg.Session.Store == "redis" {
		store = session.NewRedisTokenStore(c.redis, cfg.Session.TokenKey)
	}
	c.Session = session.New(store)
	if restored, err := c.Session.Restore(ctx); err != nil {
		slog.Warn("Failed to restore session", "error", err)
	} else if restored {
		slog.Info("Session restored")
	}

	// Remote accessor
	var remoteOpts []remote.Option
	if options.httpClient != nil {
		remoteOpts = append(remoteOpts, remote.WithHTTPClient(options.httpClient))
	}
	c.Remote = remote.NewClient(cfg.API.BaseURL, cfg.API.Timeout, c.Session, remoteOpts...)

	// Snapshot cache; a nil interface disables it
	var snapshots adapter.SnapshotCache
	if cfg.Snapshot.Enabled {
		snapshots = cache.NewSnapshotCache(c.redis, cfg.Snapshot.Key, cfg.Snapshot.TTL)
	}

	service, st, clock := c.Remote, c.State, options.clock

	c.ListAccounts = account.NewListAccountsUseCase(service, st)
	c.CreateAccount = account.NewCreateAccountUseCase(service, st)
	c.UpdateBalance = account.NewUpdateBalanceUseCase(service, st, clock)
	c.DeleteAccount = account.NewDeleteAccountUseCase(service, st)

	c.ListTransactions = transaction.NewListTransactionsUseCase(service, st)
	c.CreateTransaction = transaction.NewCreateTransactionUseCase(service, st, clock)

	c.ListGoals = goal.NewListGoalsUseCase(service, st)
	c.CreateGoal = goal.NewCreateGoalUseCase(service, st)
	c.UpdateGoal = goal.NewUpdateGoalUseCase(service, st)
	c.UpdateProgress = goal.NewUpdateProgressUseCase(service, st, clock)
	c.DeleteGoal = goal.NewDeleteGoalUseCase(service, st)

	c.ListPlatforms = platform.NewListPlatformsUseCase(service, st)
	c.CreatePlatform = platform.NewCreatePlatformUseCase(service, st)

	c.GetOverview = dashboard.NewGetOverviewUseCase(service, st)
	c.GetMonthlyMetrics = dashboard.NewGetMonthlyMetricsUseCase(service)
	c.GetLocalOverview = dashboard.NewGetLocalOverviewUseCase(st, clock)

	c.Login = auth.NewLoginUserUseCase(service, c.Session, st)
	c.Register = auth.NewRegisterUserUseCase(service)
	c.CurrentUser = auth.NewCurrentUserUseCase(service, c.Session)
	c.Logout = auth.NewLogoutUserUseCase(c.Session, st, snapshots)

	c.InitializeData = bootstrap.NewInitializeDataUseCase(service, st, snapshots, c.Session)

	return c, nil
}

// Close releases the Redis connection if NewClient opened it.
func (c *Client) Close() error {
	if c.ownsRedis && c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
