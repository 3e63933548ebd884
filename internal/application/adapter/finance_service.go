// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// FinanceService defines the remote financial service as the client sees it.
// Implementations fail with *domainerror.RemoteError when the service answers
// with a non-success status and *domainerror.TransportError when the call
// cannot complete.
type FinanceService interface {
	// ListAccounts retrieves all active accounts of the user.
	ListAccounts(ctx context.Context) ([]entity.Account, error)

	// CreateAccount creates an account and returns the stored record.
	CreateAccount(ctx context.Context, draft entity.AccountDraft) (entity.Account, error)

	// UpdateAccountBalance sets an account's balance to an absolute value.
	UpdateAccountBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, accountID int64) error

	// ListTransactions retrieves the most recent transactions, newest first.
	ListTransactions(ctx context.Context, limit int) ([]entity.Transaction, error)

	// CreateTransaction records a transaction and returns the stored record.
	CreateTransaction(ctx context.Context, draft entity.TransactionDraft) (entity.Transaction, error)

	// ListGoals retrieves all goals of the user.
	ListGoals(ctx context.Context) ([]entity.Goal, error)

	// CreateGoal creates a goal and returns the stored record.
	CreateGoal(ctx context.Context, draft entity.GoalDraft) (entity.Goal, error)

	// UpdateGoal replaces a goal's editable fields and returns the stored record.
	UpdateGoal(ctx context.Context, goalID int64, draft entity.GoalDraft) (entity.Goal, error)

	// UpdateGoalProgress sets a goal's current amount to an absolute value.
	UpdateGoalProgress(ctx context.Context, goalID int64, current decimal.Decimal) error

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, goalID int64) error

	// ListPlatforms retrieves all active platforms.
	ListPlatforms(ctx context.Context) ([]entity.Platform, error)

	// CreatePlatform creates a platform and returns the stored record.
	CreatePlatform(ctx context.Context, draft entity.PlatformDraft) (entity.Platform, error)

	// GetOverview retrieves the service's pre-aggregated dashboard summary.
	GetOverview(ctx context.Context) (entity.Overview, error)

	// GetMonthlyMetrics retrieves income, expenses and savings rate for a month.
	GetMonthlyMetrics(ctx context.Context, year, month int) (entity.MonthlyMetrics, error)
}
