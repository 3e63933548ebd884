//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-tracker/client/config"
	"github.com/finance-tracker/client/internal/application/usecase/bootstrap"
	"github.com/finance-tracker/client/internal/infra/dependency"
	"github.com/finance-tracker/client/internal/integration/persistence"
	"github.com/finance-tracker/client/internal/integration/persistence/model"
	"github.com/finance-tracker/client/test/integration/mock"
)

const (
	testJWTSecret   = "test-jwt-secret-key-for-testing-purposes"
	defaultPassword = "password123"
	defaultPlatform = 1
	requestTimeout  = 5 * time.Second
	dateLayout      = "2006-01-02"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	cfg      *config.Config
	timeMock *mock.Time
	redis    *mock.Redis

	// The service the client talks to: the ledger service or a scripted mock
	db      *mock.Db
	ledger  *httptest.Server
	api     *mock.ApiMock
	baseURL string

	client *dependency.Client

	// Outcome of the last write operation and the last full load
	lastErr  error
	lastLoad *bootstrap.InitializeDataOutput
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		redis, err := mock.NewRedis()
		if err != nil {
			return ctx, fmt.Errorf("failed to start redis: %w", err)
		}

		tc := &TestContext{
			cfg:      newTestConfig(),
			timeMock: mock.NewTime(),
			redis:    redis,
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil {
			tc.close()
		}
		return ctx, nil
	})

	registerServiceSteps(ctx)
	registerSessionSteps(ctx)
	registerDataSteps(ctx)
	registerAssertionSteps(ctx)
}

func newTestConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Server.BcryptCost = bcrypt.MinCost
	cfg.Server.LoginRateLimit = 0
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.API.Timeout = requestTimeout
	cfg.Session.Store = "memory"
	cfg.Snapshot.Enabled = false
	return cfg
}

// startLedger runs a seeded ledger service and points the client at it.
func (tc *TestContext) startLedger() error {
	db, err := mock.NewDb(model.AllModels()...)
	if err != nil {
		return err
	}
	if _, err := persistence.SeedPlatforms(context.Background(), db.DbConn); err != nil {
		return err
	}

	injector := dependency.NewInjector(tc.cfg, db.DbConn)
	tc.db = db
	tc.ledger = httptest.NewServer(injector.Router.Setup(tc.cfg.Server.Environment))
	tc.baseURL = tc.ledger.URL
	return nil
}

// startScriptedService runs an ApiMock and points the client at it.
func (tc *TestContext) startScriptedService() {
	tc.api = mock.NewApiServer()
	tc.api.Start()
	tc.baseURL = tc.api.GetUrl()
}

// Client returns the finance client, building it on first use so earlier
// steps can still change the configuration.
func (tc *TestContext) Client(ctx context.Context) (*dependency.Client, error) {
	if tc.client != nil {
		return tc.client, nil
	}
	if tc.baseURL == "" {
		return nil, fmt.Errorf("no finance service is running")
	}

	tc.cfg.API.BaseURL = tc.baseURL
	client, err := dependency.NewClient(ctx, tc.cfg,
		dependency.WithRedisClient(tc.redis.Client),
		dependency.WithClock(tc.timeMock),
	)
	if err != nil {
		return nil, err
	}
	tc.client = client
	return client, nil
}

// restartClient drops the client; the next step builds a fresh one.
func (tc *TestContext) restartClient() {
	if tc.client != nil {
		_ = tc.client.Close()
		tc.client = nil
	}
}

func (tc *TestContext) close() {
	tc.restartClient()
	if tc.ledger != nil {
		tc.ledger.Close()
	}
	if tc.db != nil {
		_ = tc.db.Close()
	}
	if tc.api != nil {
		tc.api.Close()
	}
	if tc.redis != nil {
		tc.redis.Close()
	}
}
