package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// MonthlyIncome sums income amounts occurring in now's calendar month.
func MonthlyIncome(transactions []entity.Transaction, now time.Time) decimal.Decimal {
	return monthlySum(transactions, entity.TransactionTypeIncome, now)
}

// MonthlyExpenses sums expense amounts occurring in now's calendar month.
func MonthlyExpenses(transactions []entity.Transaction, now time.Time) decimal.Decimal {
	return monthlySum(transactions, entity.TransactionTypeExpense, now)
}

func monthlySum(transactions []entity.Transaction, txType entity.TransactionType, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == txType && InMonth(tx.OccurredAt, now) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// SavingsRate returns (income - expenses) / income as a ratio.
// It is zero when income is zero.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income)
}

// SavingsRatePercent is SavingsRate scaled to percent, the unit the service
// reports in.
func SavingsRatePercent(income, expenses decimal.Decimal) decimal.Decimal {
	return SavingsRate(income, expenses).Mul(hundred)
}

// TransactionsByType returns the transactions of the given type, keeping
// their order.
func TransactionsByType(transactions []entity.Transaction, txType entity.TransactionType) []entity.Transaction {
	var out []entity.Transaction
	for _, tx := range transactions {
		if tx.Type == txType {
			out = append(out, tx)
		}
	}
	return out
}
