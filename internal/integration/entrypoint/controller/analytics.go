package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/aggregate"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// AnalyticsController serves the aggregate endpoints. It computes them with
// the same aggregate functions the client uses for its local overview, so the
// two agree by construction.
type AnalyticsController struct {
	accountRepository     adapter.AccountRepository
	transactionRepository adapter.TransactionRepository
	goalRepository        adapter.GoalRepository
	clock                 adapter.Clock
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	accountRepository adapter.AccountRepository,
	transactionRepository adapter.TransactionRepository,
	goalRepository adapter.GoalRepository,
	clock adapter.Clock,
) *AnalyticsController {
	return &AnalyticsController{
		accountRepository:     accountRepository,
		transactionRepository: transactionRepository,
		goalRepository:        goalRepository,
		clock:                 clock,
	}
}

// Overview handles GET /api/analytics/overview requests.
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	reqCtx := ctx.Request.Context()

	accounts, err := c.accountRepository.FindActive(reqCtx, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	transactions, err := c.transactionRepository.FindRecent(reqCtx, userID, 0)
	if err != nil {
		respondError(ctx, err)
		return
	}
	goals, err := c.goalRepository.FindByUserID(reqCtx, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	overview := aggregate.LocalOverview(state.Snapshot{
		Accounts:     accounts,
		Transactions: transactions,
		Goals:        goals,
	}, c.clock.Now())

	response := dto.ToOverviewResponse(overview)
	for i := range response.AccountSummaries {
		for j := range response.AccountSummaries[i].Accounts {
			response.AccountSummaries[i].Accounts[j].UserID = userID
		}
	}
	for i := range response.RecentTransactions {
		response.RecentTransactions[i].UserID = userID
	}
	for i := range response.ActiveGoals {
		response.ActiveGoals[i].UserID = userID
	}

	ctx.JSON(http.StatusOK, response)
}

// Monthly handles GET /api/analytics/monthly/:year/:month requests.
func (c *AnalyticsController) Monthly(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	// Parse period
	year, yearErr := strconv.Atoi(ctx.Param("year"))
	month, monthErr := strconv.Atoi(ctx.Param("month"))
	if yearErr != nil || monthErr != nil || month < 1 || month > 12 {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Detail: []dto.ValidationIssue{{
				Loc:  []string{"path"},
				Msg:  "year and month must be integers with month between 1 and 12",
				Type: "value_error",
			}},
		})
		return
	}

	transactions, err := c.transactionRepository.FindRecent(ctx.Request.Context(), userID, 0)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ref := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, c.clock.Now().Location())
	income := aggregate.MonthlyIncome(transactions, ref)
	expenses := aggregate.MonthlyExpenses(transactions, ref)

	ctx.JSON(http.StatusOK, dto.MonthlyMetricsResponse{
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		SavingsRate:     aggregate.SavingsRatePercent(income, expenses),
	})
}
