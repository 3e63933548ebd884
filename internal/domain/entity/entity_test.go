package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBalanceEffect(t *testing.T) {
	amount := decimal.RequireFromString("12.50")

	tests := []struct {
		name     string
		txType   TransactionType
		expected string
	}{
		{"income adds", TransactionTypeIncome, "12.50"},
		{"expense subtracts", TransactionTypeExpense, "-12.50"},
		{"transfer is neutral", TransactionTypeTransfer, "0"},
		{"unknown is neutral", TransactionType("refund"), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BalanceEffect(tt.txType, amount)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, TransactionTypeIncome.IsValid())
	assert.True(t, TransactionTypeExpense.IsValid())
	assert.True(t, TransactionTypeTransfer.IsValid())
	assert.False(t, TransactionType("").IsValid())
	assert.False(t, TransactionType("INCOME").IsValid())
}

func TestAccount_WithBalance(t *testing.T) {
	before := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	after := before.Add(time.Hour)
	original := Account{
		ID:          7,
		Name:        "Checking",
		Type:        AccountTypeChecking,
		Balance:     decimal.NewFromInt(100),
		LastUpdated: before,
		Provisional: true,
	}

	updated := original.WithBalance(decimal.NewFromInt(250), after)

	assert.True(t, decimal.NewFromInt(250).Equal(updated.Balance))
	assert.Equal(t, after, updated.LastUpdated)
	assert.Equal(t, "Checking", updated.Name)
	assert.Equal(t, int64(7), updated.Identity())

	// The receiver is a value; the original is untouched.
	assert.True(t, decimal.NewFromInt(100).Equal(original.Balance))
	assert.Equal(t, before, original.LastUpdated)
}

func TestGoal_WithProgress(t *testing.T) {
	before := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	after := before.Add(24 * time.Hour)
	original := Goal{
		ID:            3,
		Name:          "Trip",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(100),
		UpdatedAt:     before,
	}

	updated := original.WithProgress(decimal.NewFromInt(600), after)

	assert.True(t, decimal.NewFromInt(600).Equal(updated.CurrentAmount))
	assert.True(t, decimal.NewFromInt(2000).Equal(updated.TargetAmount))
	assert.Equal(t, after, updated.UpdatedAt)
	assert.True(t, decimal.NewFromInt(100).Equal(original.CurrentAmount))
}
