package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// defaultTransactionLimit applies when the limit query parameter is absent.
const defaultTransactionLimit = 50

// TransactionController handles transaction endpoints.
type TransactionController struct {
	transactionRepository adapter.TransactionRepository
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(transactionRepository adapter.TransactionRepository) *TransactionController {
	return &TransactionController{
		transactionRepository: transactionRepository,
	}
}

// List handles GET /api/transactions requests, newest first.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	// Parse limit
	limit := defaultTransactionLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
				Detail: []dto.ValidationIssue{{
					Loc:  []string{"query", "limit"},
					Msg:  "limit must be a positive integer",
					Type: "type_error.integer",
				}},
			})
			return
		}
		limit = parsed
	}

	transactions, err := c.transactionRepository.FindRecent(ctx.Request.Context(), userID, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toTransactionResponses(userID, transactions))
}

// Create handles POST /api/transactions requests. The account balance is
// adjusted by the transaction's effect.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	now := time.Now().UTC()
	occurredAt := req.TransactionDate.Time
	if occurredAt.IsZero() {
		occurredAt = now
	}

	transaction := &entity.Transaction{
		AccountID:   req.AccountID,
		Type:        entity.TransactionType(req.TransactionType),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
	}
	if err := c.transactionRepository.CreateAndApply(ctx.Request.Context(), userID, transaction); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toTransactionResponse(userID, *transaction))
}

func toTransactionResponse(userID int64, transaction entity.Transaction) dto.TransactionResponse {
	response := dto.ToTransactionResponse(transaction)
	response.UserID = userID
	return response
}

func toTransactionResponses(userID int64, transactions []entity.Transaction) []dto.TransactionResponse {
	response := make([]dto.TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = toTransactionResponse(userID, t)
	}
	return response
}
