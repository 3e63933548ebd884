package entity

import "github.com/shopspring/decimal"

// PlatformGroup is the set of accounts sharing a platform display name.
type PlatformGroup struct {
	Platform     Platform
	Accounts     []Account
	TotalBalance decimal.Decimal
}

// Overview is a snapshot of aggregate metrics. It has no identity and is
// never edited; it is either returned by the service or computed locally.
type Overview struct {
	TotalBalance       decimal.Decimal
	MonthlyIncome      decimal.Decimal
	MonthlyExpenses    decimal.Decimal
	SavingsRate        decimal.Decimal // Percent, as reported by the service
	AccountSummaries   []PlatformGroup
	RecentTransactions []Transaction
	ActiveGoals        []Goal
}

// MonthlyMetrics holds income, expenses and savings rate for one month.
type MonthlyMetrics struct {
	Year        int
	Month       int
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	SavingsRate decimal.Decimal // Percent, as reported by the service
}
