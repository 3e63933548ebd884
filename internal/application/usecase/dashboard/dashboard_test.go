package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/testutil"
)

func TestGetOverviewUseCase(t *testing.T) {
	serverOverview := entity.Overview{
		TotalBalance:  decimal.NewFromInt(6000),
		MonthlyIncome: decimal.NewFromInt(3000),
		SavingsRate:   decimal.NewFromInt(40),
	}

	t.Run("stores the fetched overview", func(t *testing.T) {
		st := state.New()
		service := &testutil.FinanceService{
			GetOverviewFn: func(ctx context.Context) (entity.Overview, error) { return serverOverview, nil },
		}

		output := NewGetOverviewUseCase(service, st).Execute(context.Background())

		require.NotNil(t, output)
		assert.True(t, output.Fresh)
		stored, ok := st.ServerOverview()
		require.True(t, ok)
		assert.Equal(t, serverOverview, stored)
	})

	t.Run("failure keeps the previous overview", func(t *testing.T) {
		st := state.New()
		st.SetServerOverview(serverOverview)
		service := &testutil.FinanceService{
			GetOverviewFn: func(ctx context.Context) (entity.Overview, error) {
				return entity.Overview{}, errors.New("connection reset")
			},
		}

		output := NewGetOverviewUseCase(service, st).Execute(context.Background())

		require.NotNil(t, output)
		assert.False(t, output.Fresh)
		assert.Equal(t, serverOverview, output.Overview)
	})

	t.Run("failure without a previous overview returns nil", func(t *testing.T) {
		st := state.New()
		service := &testutil.FinanceService{}

		assert.Nil(t, NewGetOverviewUseCase(service, st).Execute(context.Background()))
		assert.False(t, st.Loading.IsLoading())
	})
}

func TestGetMonthlyMetricsUseCase(t *testing.T) {
	t.Run("returns the metrics with a label", func(t *testing.T) {
		service := &testutil.FinanceService{
			GetMonthlyMetricsFn: func(ctx context.Context, year, month int) (entity.MonthlyMetrics, error) {
				return entity.MonthlyMetrics{Year: year, Month: month, Income: decimal.NewFromInt(100)}, nil
			},
		}

		output := NewGetMonthlyMetricsUseCase(service).Execute(context.Background(), GetMonthlyMetricsInput{
			Year:  2025,
			Month: time.March,
		})

		require.NotNil(t, output)
		assert.Equal(t, 3, output.Metrics.Month)
		assert.Equal(t, "Mar 2025", output.PeriodLabel)
	})

	t.Run("failure returns nil", func(t *testing.T) {
		output := NewGetMonthlyMetricsUseCase(&testutil.FinanceService{}).Execute(context.Background(), GetMonthlyMetricsInput{
			Year:  2025,
			Month: time.March,
		})

		assert.Nil(t, output)
	})
}

func TestGetLocalOverviewUseCase(t *testing.T) {
	now := time.Date(2025, time.May, 20, 12, 0, 0, 0, time.UTC)
	st := state.New()
	bank := entity.Platform{ID: 1, Name: "Bank A"}
	st.Platforms.ReplaceAll([]entity.Platform{bank})
	st.Accounts.ReplaceAll([]entity.Account{
		{ID: 1, PlatformID: 1, Balance: decimal.NewFromInt(1000)},
		{ID: 2, PlatformID: 1, Balance: decimal.NewFromInt(5000)},
	})
	st.Transactions.ReplaceAll([]entity.Transaction{
		{ID: 1, Type: entity.TransactionTypeIncome, Amount: decimal.NewFromInt(1000), OccurredAt: now},
		{ID: 2, Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(250), OccurredAt: now},
	})
	uc := NewGetLocalOverviewUseCase(st, testutil.FixedClock{At: now})

	overview := uc.Execute()

	assert.True(t, overview.TotalBalance.Equal(decimal.NewFromInt(6000)))
	assert.True(t, overview.SavingsRate.Equal(decimal.NewFromInt(75)), "got %s", overview.SavingsRate)
	require.Len(t, overview.AccountSummaries, 1)
	assert.Equal(t, "Bank A", overview.AccountSummaries[0].Platform.Name)

	st.Accounts.Remove(2)
	assert.True(t, uc.Execute().TotalBalance.Equal(decimal.NewFromInt(1000)))
}

func TestPeriodHelpers(t *testing.T) {
	assert.Equal(t, "Dec 2024", GeneratePeriodLabel(2024, time.December))

	year, month := PreviousMonth(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.December, month)
}
