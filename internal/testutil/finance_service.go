// Package testutil provides test doubles for the application adapters.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// FinanceService is a programmable adapter.FinanceService. Each call runs
// the matching func field, or returns a 501 RemoteError when it is unset.
// Calls are counted per method name.
type FinanceService struct {
	ListAccountsFn         func(ctx context.Context) ([]entity.Account, error)
	CreateAccountFn        func(ctx context.Context, draft entity.AccountDraft) (entity.Account, error)
	UpdateAccountBalanceFn func(ctx context.Context, accountID int64, balance decimal.Decimal) error
	DeleteAccountFn        func(ctx context.Context, accountID int64) error
	ListTransactionsFn     func(ctx context.Context, limit int) ([]entity.Transaction, error)
	CreateTransactionFn    func(ctx context.Context, draft entity.TransactionDraft) (entity.Transaction, error)
	ListGoalsFn            func(ctx context.Context) ([]entity.Goal, error)
	CreateGoalFn           func(ctx context.Context, draft entity.GoalDraft) (entity.Goal, error)
	UpdateGoalFn           func(ctx context.Context, goalID int64, draft entity.GoalDraft) (entity.Goal, error)
	UpdateGoalProgressFn   func(ctx context.Context, goalID int64, current decimal.Decimal) error
	DeleteGoalFn           func(ctx context.Context, goalID int64) error
	ListPlatformsFn        func(ctx context.Context) ([]entity.Platform, error)
	CreatePlatformFn       func(ctx context.Context, draft entity.PlatformDraft) (entity.Platform, error)
	GetOverviewFn          func(ctx context.Context) (entity.Overview, error)
	GetMonthlyMetricsFn    func(ctx context.Context, year, month int) (entity.MonthlyMetrics, error)

	mu    sync.Mutex
	calls map[string]int
}

// Calls returns how many times the named method was invoked.
func (f *FinanceService) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *FinanceService) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[method]++
}

func notImplemented(method string) error {
	return &domainerror.RemoteError{Method: "TEST", Path: method, Status: 501}
}

func (f *FinanceService) ListAccounts(ctx context.Context) ([]entity.Account, error) {
	f.record("ListAccounts")
	if f.ListAccountsFn == nil {
		return nil, notImplemented("ListAccounts")
	}
	return f.ListAccountsFn(ctx)
}

func (f *FinanceService) CreateAccount(ctx context.Context, draft entity.AccountDraft) (entity.Account, error) {
	f.record("CreateAccount")
	if f.CreateAccountFn == nil {
		return entity.Account{}, notImplemented("CreateAccount")
	}
	return f.CreateAccountFn(ctx, draft)
}

func (f *FinanceService) UpdateAccountBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error {
	f.record("UpdateAccountBalance")
	if f.UpdateAccountBalanceFn == nil {
		return notImplemented("UpdateAccountBalance")
	}
	return f.UpdateAccountBalanceFn(ctx, accountID, balance)
}

func (f *FinanceService) DeleteAccount(ctx context.Context, accountID int64) error {
	f.record("DeleteAccount")
	if f.DeleteAccountFn == nil {
		return notImplemented("DeleteAccount")
	}
	return f.DeleteAccountFn(ctx, accountID)
}

func (f *FinanceService) ListTransactions(ctx context.Context, limit int) ([]entity.Transaction, error) {
	f.record("ListTransactions")
	if f.ListTransactionsFn == nil {
		return nil, notImplemented("ListTransactions")
	}
	return f.ListTransactionsFn(ctx, limit)
}

func (f *FinanceService) CreateTransaction(ctx context.Context, draft entity.TransactionDraft) (entity.Transaction, error) {
	f.record("CreateTransaction")
	if f.CreateTransactionFn == nil {
		return entity.Transaction{}, notImplemented("CreateTransaction")
	}
	return f.CreateTransactionFn(ctx, draft)
}

func (f *FinanceService) ListGoals(ctx context.Context) ([]entity.Goal, error) {
	f.record("ListGoals")
	if f.ListGoalsFn == nil {
		return nil, notImplemented("ListGoals")
	}
	return f.ListGoalsFn(ctx)
}

func (f *FinanceService) CreateGoal(ctx context.Context, draft entity.GoalDraft) (entity.Goal, error) {
	f.record("CreateGoal")
	if f.CreateGoalFn == nil {
		return entity.Goal{}, notImplemented("CreateGoal")
	}
	return f.CreateGoalFn(ctx, draft)
}

func (f *FinanceService) UpdateGoal(ctx context.Context, goalID int64, draft entity.GoalDraft) (entity.Goal, error) {
	f.record("UpdateGoal")
	if f.UpdateGoalFn == nil {
		return entity.Goal{}, notImplemented("UpdateGoal")
	}
	return f.UpdateGoalFn(ctx, goalID, draft)
}

func (f *FinanceService) UpdateGoalProgress(ctx context.Context, goalID int64, current decimal.Decimal) error {
	f.record("UpdateGoalProgress")
	if f.UpdateGoalProgressFn == nil {
		return notImplemented("UpdateGoalProgress")
	}
	return f.UpdateGoalProgressFn(ctx, goalID, current)
}

func (f *FinanceService) DeleteGoal(ctx context.Context, goalID int64) error {
	f.record("DeleteGoal")
	if f.DeleteGoalFn == nil {
		return notImplemented("DeleteGoal")
	}
	return f.DeleteGoalFn(ctx, goalID)
}

func (f *FinanceService) ListPlatforms(ctx context.Context) ([]entity.Platform, error) {
	f.record("ListPlatforms")
	if f.ListPlatformsFn == nil {
		return nil, notImplemented("ListPlatforms")
	}
	return f.ListPlatformsFn(ctx)
}

func (f *FinanceService) CreatePlatform(ctx context.Context, draft entity.PlatformDraft) (entity.Platform, error) {
	f.record("CreatePlatform")
	if f.CreatePlatformFn == nil {
		return entity.Platform{}, notImplemented("CreatePlatform")
	}
	return f.CreatePlatformFn(ctx, draft)
}

func (f *FinanceService) GetOverview(ctx context.Context) (entity.Overview, error) {
	f.record("GetOverview")
	if f.GetOverviewFn == nil {
		return entity.Overview{}, notImplemented("GetOverview")
	}
	return f.GetOverviewFn(ctx)
}

func (f *FinanceService) GetMonthlyMetrics(ctx context.Context, year, month int) (entity.MonthlyMetrics, error) {
	f.record("GetMonthlyMetrics")
	if f.GetMonthlyMetricsFn == nil {
		return entity.MonthlyMetrics{}, notImplemented("GetMonthlyMetrics")
	}
	return f.GetMonthlyMetricsFn(ctx, year, month)
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.At
}
