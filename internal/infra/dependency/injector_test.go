package dependency

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-tracker/client/config"
	"github.com/finance-tracker/client/internal/infra/db"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/client/internal/integration/persistence"
	"github.com/finance-tracker/client/internal/integration/persistence/model"
)

func newTestConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Server.BcryptCost = bcrypt.MinCost
	cfg.Server.LoginRateLimit = 3
	cfg.Database.URL = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg.Database.ConnMaxLifetime = time.Hour
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.Session.Store = "memory"
	cfg.Snapshot.Enabled = false
	return cfg
}

// newTestLedger starts a seeded ledger service on an in-memory database.
func newTestLedger(t *testing.T, cfg *config.Config) (*Injector, *gin.Engine) {
	t.Helper()

	database, err := db.NewConnection(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.AutoMigrate(model.AllModels()...))
	_, err = persistence.SeedPlatforms(context.Background(), database.DB())
	require.NoError(t, err)

	injector := NewInjector(cfg, database.DB())
	return injector, injector.Router.Setup(cfg.Server.Environment)
}

func doJSON(t *testing.T, engine http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func doLogin(t *testing.T, engine http.Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{"username": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// registerAndLogin creates a user and returns a bearer token for it.
func registerAndLogin(t *testing.T, engine http.Handler, email string) string {
	t.Helper()

	w := doJSON(t, engine, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Email:    email,
		FullName: "Test User",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doLogin(t, engine, email, "password123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.TokenResponse](t, w).AccessToken
}

func createAccount(t *testing.T, engine http.Handler, token, name string, balance int64) dto.AccountResponse {
	t.Helper()

	w := doJSON(t, engine, http.MethodPost, "/api/accounts", token, dto.CreateAccountRequest{
		AccountName:    name,
		AccountType:    "checking",
		AccountNumber:  "0001",
		CurrentBalance: decimal.NewFromInt(balance),
		PlatformID:     1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.AccountResponse](t, w)
}

func TestLedger_Health(t *testing.T) {
	_, engine := newTestLedger(t, newTestConfig())

	w := doJSON(t, engine, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[dto.HealthResponse](t, w)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "Personal Finance API is running", health.Message)
}

func TestLedger_RegisterAndLogin(t *testing.T) {
	_, engine := newTestLedger(t, newTestConfig())

	w := doJSON(t, engine, http.MethodPost, "/api/register", "", dto.RegisterRequest{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	user := decode[dto.UserResponse](t, w)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.True(t, user.IsActive)

	t.Run("duplicate email", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/register", "", dto.RegisterRequest{
			Email:    "jane@example.com",
			FullName: "Jane Again",
			Password: "password123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already registered", decode[dto.ErrorResponse](t, w).Detail)
	})

	t.Run("weak password", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/register", "", dto.RegisterRequest{
			Email:    "weak@example.com",
			FullName: "Weak",
			Password: "short",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/register", "", map[string]string{"email": "not-an-email"})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		issues := decode[dto.ValidationErrorResponse](t, w)
		assert.NotEmpty(t, issues.Detail)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doLogin(t, engine, "jane@example.com", "wrong-password")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		assert.Equal(t, "Incorrect email or password", decode[dto.ErrorResponse](t, w).Detail)
	})

	t.Run("login and me", func(t *testing.T) {
		w := doLogin(t, engine, "jane@example.com", "password123")
		require.Equal(t, http.StatusOK, w.Code)
		token := decode[dto.TokenResponse](t, w)
		assert.Equal(t, "bearer", token.TokenType)
		assert.NotEmpty(t, token.AccessToken)

		w = doJSON(t, engine, http.MethodGet, "/api/me", token.AccessToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, user.ID, decode[dto.UserResponse](t, w).ID)
	})
}

func TestLedger_RequiresToken(t *testing.T) {
	_, engine := newTestLedger(t, newTestConfig())

	w := doJSON(t, engine, http.MethodGet, "/api/accounts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", decode[dto.ErrorResponse](t, w).Detail)

	w = doJSON(t, engine, http.MethodGet, "/api/accounts", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Could not validate credentials", decode[dto.ErrorResponse](t, w).Detail)

	// The platform list is public
	w = doJSON(t, engine, http.MethodGet, "/api/platforms", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.PlatformResponse](t, w), len(persistence.DefaultPlatforms))
}

func TestLedger_LoginRateLimit(t *testing.T) {
	injector, engine := newTestLedger(t, newTestConfig())

	for i := 0; i < injector.Config.Server.LoginRateLimit; i++ {
		w := doLogin(t, engine, "nobody@example.com", "whatever")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := doLogin(t, engine, "nobody@example.com", "whatever")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLedger_TransactionsAdjustBalance(t *testing.T) {
	_, engine := newTestLedger(t, newTestConfig())
	token := registerAndLogin(t, engine, "jane@example.com")

	account := createAccount(t, engine, token, "Checking", 1000)
	assert.Equal(t, "USD", account.Currency)
	require.NotNil(t, account.Platform)

	for _, tx := range []dto.CreateTransactionRequest{
		{AccountID: account.ID, TransactionType: "income", Category: "salary", Amount: decimal.NewFromInt(500)},
		{AccountID: account.ID, TransactionType: "expense", Category: "food", Amount: decimal.NewFromInt(120)},
		{AccountID: account.ID, TransactionType: "transfer", Category: "move", Amount: decimal.NewFromInt(50)},
	} {
		w := doJSON(t, engine, http.MethodPost, "/api/transactions", token, tx)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doJSON(t, engine, http.MethodGet, "/api/accounts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	accounts := decode[[]dto.AccountResponse](t, w)
	require.Len(t, accounts, 1)
	assert.True(t, decimal.NewFromInt(1380).Equal(accounts[0].CurrentBalance), accounts[0].CurrentBalance.String())

	w = doJSON(t, engine, http.MethodGet, "/api/transactions?limit=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.TransactionResponse](t, w), 2)

	w = doJSON(t, engine, http.MethodGet, "/api/transactions?limit=abc", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	t.Run("other users cannot post to the account", func(t *testing.T) {
		other := registerAndLogin(t, engine, "john@example.com")
		w := doJSON(t, engine, http.MethodPost, "/api/transactions", other, dto.CreateTransactionRequest{
			AccountID: account.ID, TransactionType: "income", Amount: decimal.NewFromInt(1),
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("balance update and delete", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/accounts/%d/balance", account.ID), token,
			dto.UpdateBalanceRequest{NewBalance: decimal.NewFromInt(42)})
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decimal.NewFromInt(42).Equal(decode[dto.AccountResponse](t, w).CurrentBalance))

		w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/accounts/%d", account.ID), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Account deleted successfully", decode[dto.MessageResponse](t, w).Message)

		w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/accounts/%d", account.ID), token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLedger_Goals(t *testing.T) {
	_, engine := newTestLedger(t, newTestConfig())
	token := registerAndLogin(t, engine, "jane@example.com")

	w := doJSON(t, engine, http.MethodPost, "/api/goals", token, dto.GoalRequest{
		GoalName:     "Vacation",
		GoalType:     "savings",
		TargetAmount: decimal.NewFromInt(3000),
		TargetDate:   dto.NewTimestamp(time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	goal := decode[dto.GoalResponse](t, w)
	assert.True(t, goal.IsActive)

	w = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/goals/%d/progress", goal.ID), token,
		dto.UpdateProgressRequest{CurrentAmount: decimal.NewFromInt(750)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, decimal.NewFromInt(750).Equal(decode[dto.GoalResponse](t, w).CurrentAmount))

	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/goals/%d", goal.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Goal deleted successfully", decode[dto.MessageResponse](t, w).Message)

	w = doJSON(t, engine, http.MethodGet, "/api/goals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]dto.GoalResponse](t, w))

	w = doJSON(t, engine, http.MethodPut, "/api/goals/not-a-number/progress", token,
		dto.UpdateProgressRequest{CurrentAmount: decimal.Zero})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLedger_Analytics(t *testing.T) {
	_, engine := newTestLedger(t, newTestConfig())
	token := registerAndLogin(t, engine, "jane@example.com")
	account := createAccount(t, engine, token, "Checking", 0)

	for _, tx := range []dto.CreateTransactionRequest{
		{AccountID: account.ID, TransactionType: "income", Amount: decimal.NewFromInt(4000)},
		{AccountID: account.ID, TransactionType: "expense", Amount: decimal.NewFromInt(1000)},
	} {
		w := doJSON(t, engine, http.MethodPost, "/api/transactions", token, tx)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doJSON(t, engine, http.MethodGet, "/api/analytics/overview", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	overview := decode[dto.OverviewResponse](t, w)
	assert.True(t, decimal.NewFromInt(3000).Equal(overview.TotalBalance), overview.TotalBalance.String())
	assert.True(t, decimal.NewFromInt(4000).Equal(overview.MonthlyIncome))
	assert.True(t, decimal.NewFromInt(1000).Equal(overview.MonthlyExpenses))
	assert.True(t, decimal.NewFromInt(75).Equal(overview.SavingsRate), overview.SavingsRate.String())
	require.Len(t, overview.AccountSummaries, 1)
	assert.Equal(t, 1, overview.AccountSummaries[0].AccountCount)
	assert.Len(t, overview.RecentTransactions, 2)

	now := time.Now()
	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/analytics/monthly/%d/%d", now.Year(), int(now.Month())), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	monthly := decode[dto.MonthlyMetricsResponse](t, w)
	assert.True(t, decimal.NewFromInt(4000).Equal(monthly.MonthlyIncome))

	w = doJSON(t, engine, http.MethodGet, "/api/analytics/monthly/2025/13", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
