package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// AccountSummaryResponse is one platform group of the overview.
type AccountSummaryResponse struct {
	PlatformName string            `json:"platform_name"`
	PlatformType string            `json:"platform_type"`
	TotalBalance decimal.Decimal   `json:"total_balance"`
	AccountCount int               `json:"account_count"`
	Accounts     []AccountResponse `json:"accounts"`
}

// OverviewResponse represents the financial overview.
type OverviewResponse struct {
	TotalBalance       decimal.Decimal          `json:"total_balance"`
	MonthlyIncome      decimal.Decimal          `json:"monthly_income"`
	MonthlyExpenses    decimal.Decimal          `json:"monthly_expenses"`
	SavingsRate        decimal.Decimal          `json:"savings_rate"`
	AccountSummaries   []AccountSummaryResponse `json:"account_summaries"`
	RecentTransactions []TransactionResponse    `json:"recent_transactions"`
	ActiveGoals        []GoalResponse           `json:"active_goals"`
}

// MonthlyMetricsResponse represents a month's metrics.
type MonthlyMetricsResponse struct {
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	SavingsRate     decimal.Decimal `json:"savings_rate"`
}

// ToEntity converts the response to a domain Overview.
func (r OverviewResponse) ToEntity() entity.Overview {
	groups := make([]entity.PlatformGroup, len(r.AccountSummaries))
	for i, summary := range r.AccountSummaries {
		groups[i] = entity.PlatformGroup{
			Platform: entity.Platform{
				Name: summary.PlatformName,
				Type: entity.PlatformType(summary.PlatformType),
			},
			Accounts:     ToAccountEntities(summary.Accounts),
			TotalBalance: summary.TotalBalance,
		}
		// The group's platform carries the id when the accounts reveal it.
		if len(summary.Accounts) > 0 {
			groups[i].Platform.ID = summary.Accounts[0].PlatformID
		}
	}

	return entity.Overview{
		TotalBalance:       r.TotalBalance,
		MonthlyIncome:      r.MonthlyIncome,
		MonthlyExpenses:    r.MonthlyExpenses,
		SavingsRate:        r.SavingsRate,
		AccountSummaries:   groups,
		RecentTransactions: ToTransactionEntities(r.RecentTransactions),
		ActiveGoals:        ToGoalEntities(r.ActiveGoals),
	}
}

// ToOverviewResponse converts a domain Overview to its response.
func ToOverviewResponse(o entity.Overview) OverviewResponse {
	response := OverviewResponse{
		TotalBalance:       o.TotalBalance,
		MonthlyIncome:      o.MonthlyIncome,
		MonthlyExpenses:    o.MonthlyExpenses,
		SavingsRate:        o.SavingsRate,
		AccountSummaries:   make([]AccountSummaryResponse, len(o.AccountSummaries)),
		RecentTransactions: make([]TransactionResponse, len(o.RecentTransactions)),
		ActiveGoals:        make([]GoalResponse, len(o.ActiveGoals)),
	}

	for i, group := range o.AccountSummaries {
		accounts := make([]AccountResponse, len(group.Accounts))
		for j, a := range group.Accounts {
			accounts[j] = ToAccountResponse(a)
		}
		response.AccountSummaries[i] = AccountSummaryResponse{
			PlatformName: group.Platform.Name,
			PlatformType: string(group.Platform.Type),
			TotalBalance: group.TotalBalance,
			AccountCount: len(group.Accounts),
			Accounts:     accounts,
		}
	}
	for i, t := range o.RecentTransactions {
		response.RecentTransactions[i] = ToTransactionResponse(t)
	}
	for i, g := range o.ActiveGoals {
		response.ActiveGoals[i] = ToGoalResponse(g)
	}

	return response
}

// ToEntity converts the response to domain MonthlyMetrics for the given month.
func (r MonthlyMetricsResponse) ToEntity(year, month int) entity.MonthlyMetrics {
	return entity.MonthlyMetrics{
		Year:        year,
		Month:       month,
		Income:      r.MonthlyIncome,
		Expenses:    r.MonthlyExpenses,
		SavingsRate: r.SavingsRate,
	}
}
