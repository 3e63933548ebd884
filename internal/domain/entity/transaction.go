package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// Transaction represents a single movement of money on an account.
type Transaction struct {
	ID          int64
	AccountID   int64
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Description string
	OccurredAt  time.Time
	CreatedAt   time.Time
}

// Identity returns the transaction ID.
func (t Transaction) Identity() int64 {
	return t.ID
}

// BalanceEffect returns the signed change the transaction applies to its
// account balance: +amount for income, -amount for expense. Transfers and
// unknown types have no effect.
func BalanceEffect(txType TransactionType, amount decimal.Decimal) decimal.Decimal {
	switch txType {
	case TransactionTypeIncome:
		return amount
	case TransactionTypeExpense:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}

// TransactionDraft holds the creatable fields of a transaction.
type TransactionDraft struct {
	AccountID   int64
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Description string
	OccurredAt  time.Time
}
