package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/client/internal/domain/entity"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "zone-less timestamp is read as UTC",
			input:    `"2025-03-04T10:20:30"`,
			expected: time.Date(2025, time.March, 4, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "fractional seconds",
			input:    `"2025-03-04T10:20:30.123456"`,
			expected: time.Date(2025, time.March, 4, 10, 20, 30, 123456000, time.UTC),
		},
		{
			name:     "RFC 3339 with offset",
			input:    `"2025-03-04T10:20:30+02:00"`,
			expected: time.Date(2025, time.March, 4, 8, 20, 30, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    `"2025-12-31"`,
			expected: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "null",
			input: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.expected.Equal(ts.Time), "got %s", ts.Time)
		})
	}

	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestAccountResponse_ToEntity(t *testing.T) {
	body := `{
		"id": 3,
		"user_id": 1,
		"account_name": "Checking",
		"account_type": "checking",
		"account_number": "0001",
		"current_balance": 1234.56,
		"currency": "USD",
		"platform_id": 2,
		"is_active": true,
		"created_at": "2025-01-01T00:00:00",
		"last_updated": "2025-01-02T00:00:00",
		"platform": {"id": 2, "name": "Bank A", "platform_type": "bank", "logo_url": null, "api_endpoint": null, "is_active": true}
	}`

	var response AccountResponse
	require.NoError(t, json.Unmarshal([]byte(body), &response))
	account := response.ToEntity()

	assert.Equal(t, int64(3), account.ID)
	assert.Equal(t, entity.AccountTypeChecking, account.Type)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("1234.56")))
	require.NotNil(t, account.Platform)
	assert.Equal(t, "Bank A", account.Platform.Name)
	assert.Empty(t, account.Platform.LogoURL)
	assert.False(t, account.Provisional)
}

func TestRequestsEncodeMoneyAsNumbers(t *testing.T) {
	body, err := json.Marshal(UpdateBalanceRequest{NewBalance: decimal.RequireFromString("10.50")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"new_balance": 10.5}`, string(body))

	body, err = json.Marshal(ToGoalRequest(entity.GoalDraft{
		Name:         "Trip",
		Type:         entity.GoalTypeSavings,
		TargetAmount: decimal.NewFromInt(900),
		Deadline:     time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"goal_name": "Trip",
		"goal_type": "savings",
		"target_amount": 900,
		"target_date": "2025-06-01T00:00:00Z",
		"priority": "medium"
	}`, string(body))
}

func TestOverviewResponse_ToEntity(t *testing.T) {
	body := `{
		"total_balance": 6000,
		"monthly_income": 3000,
		"monthly_expenses": 1800,
		"savings_rate": 40,
		"account_summaries": [
			{"platform_name": "Bank A", "platform_type": "bank", "total_balance": 6000, "account_count": 2,
			 "accounts": [{"id": 1, "platform_id": 7, "current_balance": 1000}, {"id": 2, "platform_id": 7, "current_balance": 5000}]}
		],
		"recent_transactions": [{"id": 9, "account_id": 1, "transaction_type": "income", "amount": 3000, "transaction_date": "2025-05-01T09:00:00"}],
		"active_goals": []
	}`

	var response OverviewResponse
	require.NoError(t, json.Unmarshal([]byte(body), &response))
	overview := response.ToEntity()

	assert.True(t, overview.SavingsRate.Equal(decimal.NewFromInt(40)))
	require.Len(t, overview.AccountSummaries, 1)
	group := overview.AccountSummaries[0]
	assert.Equal(t, int64(7), group.Platform.ID)
	assert.Equal(t, entity.PlatformTypeBank, group.Platform.Type)
	assert.Len(t, group.Accounts, 2)
	require.Len(t, overview.RecentTransactions, 1)
	assert.Equal(t, entity.TransactionTypeIncome, overview.RecentTransactions[0].Type)
	assert.Empty(t, overview.ActiveGoals)
}
