package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	accountRepository  adapter.AccountRepository
	platformRepository adapter.PlatformRepository
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	accountRepository adapter.AccountRepository,
	platformRepository adapter.PlatformRepository,
) *AccountController {
	return &AccountController{
		accountRepository:  accountRepository,
		platformRepository: platformRepository,
	}
}

// List handles GET /api/accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	accounts, err := c.accountRepository.FindActive(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAccountResponses(userID, accounts))
}

// Create handles POST /api/accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	// The platform must exist
	platform, err := c.platformRepository.FindByID(ctx.Request.Context(), req.PlatformID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now().UTC()
	account := &entity.Account{
		Name:        req.AccountName,
		Type:        entity.AccountType(req.AccountType),
		Number:      req.AccountNumber,
		Currency:    currency,
		PlatformID:  platform.ID,
		Platform:    platform,
		Balance:     req.CurrentBalance,
		Active:      true,
		CreatedAt:   now,
		LastUpdated: now,
	}
	if err := c.accountRepository.Create(ctx.Request.Context(), userID, account); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAccountResponse(userID, *account))
}

// UpdateBalance handles PUT /api/accounts/:id/balance requests.
func (c *AccountController) UpdateBalance(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	accountID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	if err := c.accountRepository.UpdateBalance(ctx.Request.Context(), userID, accountID, req.NewBalance); err != nil {
		respondError(ctx, err)
		return
	}

	account, err := c.accountRepository.FindByID(ctx.Request.Context(), userID, accountID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toAccountResponse(userID, *account))
}

// Delete handles DELETE /api/accounts/:id requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	accountID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.accountRepository.Delete(ctx.Request.Context(), userID, accountID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}

func toAccountResponse(userID int64, account entity.Account) dto.AccountResponse {
	response := dto.ToAccountResponse(account)
	response.UserID = userID
	return response
}

func toAccountResponses(userID int64, accounts []entity.Account) []dto.AccountResponse {
	response := make([]dto.AccountResponse, len(accounts))
	for i, a := range accounts {
		response[i] = toAccountResponse(userID, a)
	}
	return response
}
