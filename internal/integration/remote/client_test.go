package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

type staticCredentials string

func (s staticCredentials) Authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+string(s))
}

func TestListAccounts_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/accounts", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "account_name": "Checking", "account_type": "checking", "current_balance": 1000.5, "platform_id": 2,
			 "platform": {"id": 2, "name": "Bank A", "platform_type": "bank", "is_active": true}},
			{"id": 2, "account_name": "Savings", "account_type": "savings", "current_balance": 5000, "platform_id": 2}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticCredentials("tok"))

	accounts, err := client.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Checking", accounts[0].Name)
	assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("1000.5")))
	require.NotNil(t, accounts[0].Platform)
	assert.Equal(t, "Bank A", accounts[0].Platform.Name)
	assert.Nil(t, accounts[1].Platform)
}

func TestClient_WithoutCredentialsSendsNoAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	platforms, err := NewClient(server.URL, time.Second, nil).ListPlatforms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, platforms)
}

func TestClient_RemoteErrors(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		expectedDetail string
		expectedIs     error
	}{
		{
			name:           "string detail",
			status:         http.StatusBadRequest,
			body:           `{"detail": "Email already registered"}`,
			expectedDetail: "Email already registered",
		},
		{
			name:           "validation detail list",
			status:         http.StatusUnprocessableEntity,
			body:           `{"detail": [{"loc": ["body", "amount"], "msg": "field required"}, {"msg": "value is not a valid float"}]}`,
			expectedDetail: "field required; value is not a valid float",
		},
		{
			name:       "unauthorized without body",
			status:     http.StatusUnauthorized,
			expectedIs: domainerror.ErrUnauthorized,
		},
		{
			name:       "not found with html body",
			status:     http.StatusNotFound,
			body:       `<html>not found</html>`,
			expectedIs: domainerror.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := NewClient(server.URL, time.Second, nil).DeleteGoal(context.Background(), 3)

			var remoteErr *domainerror.RemoteError
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, tt.status, remoteErr.Status)
			assert.Equal(t, tt.expectedDetail, remoteErr.Detail)
			assert.Equal(t, http.MethodDelete, remoteErr.Method)
			assert.Equal(t, "/api/goals/3", remoteErr.Path)
			if tt.expectedIs != nil {
				assert.ErrorIs(t, err, tt.expectedIs)
			}
		})
	}
}

func TestClient_TransportErrors(t *testing.T) {
	t.Run("unreachable service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewClient(url, time.Second, nil).ListGoals(context.Background())

		var transportErr *domainerror.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "/api/goals", transportErr.Path)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		_, err := NewClient(server.URL, 20*time.Millisecond, nil).GetOverview(context.Background())

		var transportErr *domainerror.TransportError
		assert.ErrorAs(t, err, &transportErr)
	})
}

func TestUpdateAccountBalance_SendsAbsoluteBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/accounts/7/balance", r.URL.Path)

		var body map[string]json.Number
		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()
		require.NoError(t, decoder.Decode(&body))
		assert.Equal(t, json.Number("2500.75"), body["new_balance"])

		w.Write([]byte(`{"id": 7, "current_balance": 2500.75}`))
	}))
	defer server.Close()

	err := NewClient(server.URL, time.Second, nil).UpdateAccountBalance(context.Background(), 7, decimal.RequireFromString("2500.75"))
	require.NoError(t, err)
}

func TestListTransactions_SendsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"id": 4, "account_id": 1, "transaction_type": "expense", "category": "food", "amount": 12.3,
			"description": "Lunch", "transaction_date": "2025-04-02T12:00:00", "created_at": "2025-04-02T12:00:01"}]`))
	}))
	defer server.Close()

	transactions, err := NewClient(server.URL, time.Second, nil).ListTransactions(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, entity.TransactionTypeExpense, transactions[0].Type)
	assert.Equal(t, time.Date(2025, time.April, 2, 12, 0, 0, 0, time.UTC), transactions[0].OccurredAt)
}

func TestCreateTransaction_SendsDraft(t *testing.T) {
	occurred := time.Date(2025, time.April, 2, 12, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1), body["account_id"])
		assert.Equal(t, "income", body["transaction_type"])
		assert.Equal(t, float64(200), body["amount"])
		assert.Equal(t, "2025-04-02T12:00:00Z", body["transaction_date"])

		w.Write([]byte(`{"id": 11, "account_id": 1, "transaction_type": "income", "amount": 200, "transaction_date": "2025-04-02T12:00:00Z"}`))
	}))
	defer server.Close()

	transaction, err := NewClient(server.URL, time.Second, nil).CreateTransaction(context.Background(), entity.TransactionDraft{
		AccountID:  1,
		Type:       entity.TransactionTypeIncome,
		Amount:     decimal.NewFromInt(200),
		OccurredAt: occurred,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), transaction.ID)
	assert.True(t, occurred.Equal(transaction.OccurredAt))
}

func TestGetMonthlyMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analytics/monthly/2025/3", r.URL.Path)
		w.Write([]byte(`{"monthly_income": 3000, "monthly_expenses": 1200, "savings_rate": 60}`))
	}))
	defer server.Close()

	metrics, err := NewClient(server.URL, time.Second, nil).GetMonthlyMetrics(context.Background(), 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, 2025, metrics.Year)
	assert.Equal(t, 3, metrics.Month)
	assert.True(t, metrics.SavingsRate.Equal(decimal.NewFromInt(60)))
}

func TestLogin_PostsForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ana@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))

		w.Write([]byte(`{"access_token": "jwt-token", "token_type": "bearer"}`))
	}))
	defer server.Close()

	token, err := NewClient(server.URL, time.Second, nil).Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestClient_DecodeFailureIsNotRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "not-a-number"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second, nil).CurrentUser(context.Background())

	require.Error(t, err)
	var remoteErr *domainerror.RemoteError
	var transportErr *domainerror.TransportError
	assert.False(t, errors.As(err, &remoteErr))
	assert.False(t, errors.As(err, &transportErr))
}

func TestParseDetail(t *testing.T) {
	assert.Equal(t, "", parseDetail(nil))
	assert.Equal(t, "", parseDetail([]byte(`{"detail": 5}`)))
	assert.Equal(t, "Goal not found", parseDetail([]byte(`{"detail": "Goal not found"}`)))
}
