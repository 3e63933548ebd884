package aggregate

import (
	"time"

	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// RecentTransactionLimit is how many transactions an overview lists.
const RecentTransactionLimit = 10

// LocalOverview computes, from the snapshot alone, the same summary the
// service's overview endpoint returns.
func LocalOverview(snap state.Snapshot, now time.Time) entity.Overview {
	income := MonthlyIncome(snap.Transactions, now)
	expenses := MonthlyExpenses(snap.Transactions, now)

	recent := snap.Transactions
	if len(recent) > RecentTransactionLimit {
		recent = recent[:RecentTransactionLimit]
	}

	return entity.Overview{
		TotalBalance:       TotalBalance(snap.Accounts),
		MonthlyIncome:      income,
		MonthlyExpenses:    expenses,
		SavingsRate:        SavingsRatePercent(income, expenses),
		AccountSummaries:   GroupByPlatform(snap.Accounts, snap.Platforms),
		RecentTransactions: recent,
		ActiveGoals:        ActiveGoals(snap.Goals),
	}
}
