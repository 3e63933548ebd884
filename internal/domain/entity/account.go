package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType represents the type of a financial account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
)

// Account represents a user's account on a platform.
type Account struct {
	ID          int64
	Name        string
	Type        AccountType
	Number      string
	Currency    string
	PlatformID  int64
	Platform    *Platform // As embedded by the service; may be nil
	Balance     decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	LastUpdated time.Time

	// Provisional is set when Balance was projected locally from a created
	// transaction and has not been confirmed by an authoritative fetch.
	Provisional bool
}

// Identity returns the account ID.
func (a Account) Identity() int64 {
	return a.ID
}

// WithBalance returns a copy of the account with the given balance and a
// refreshed LastUpdated timestamp.
func (a Account) WithBalance(balance decimal.Decimal, at time.Time) Account {
	a.Balance = balance
	a.LastUpdated = at
	return a
}

// AccountDraft holds the creatable fields of an account.
type AccountDraft struct {
	Name       string
	Type       AccountType
	Number     string
	Currency   string
	PlatformID int64
	Balance    decimal.Decimal
}
