package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	AccountName    string          `json:"account_name" binding:"required,min=1,max=100"`
	AccountType    string          `json:"account_type" binding:"required,oneof=checking savings credit investment"`
	AccountNumber  string          `json:"account_number" binding:"required"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Currency       string          `json:"currency"`
	PlatformID     int64           `json:"platform_id" binding:"required"`
}

// UpdateBalanceRequest represents the request body for a balance update.
type UpdateBalanceRequest struct {
	NewBalance decimal.Decimal `json:"new_balance"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	AccountName    string            `json:"account_name"`
	AccountType    string            `json:"account_type"`
	AccountNumber  string            `json:"account_number"`
	CurrentBalance decimal.Decimal   `json:"current_balance"`
	Currency       string            `json:"currency"`
	PlatformID     int64             `json:"platform_id"`
	IsActive       bool              `json:"is_active"`
	CreatedAt      Timestamp         `json:"created_at"`
	LastUpdated    Timestamp         `json:"last_updated"`
	Platform       *PlatformResponse `json:"platform,omitempty"`
}

// ToCreateAccountRequest converts a draft to its request body.
func ToCreateAccountRequest(draft entity.AccountDraft) CreateAccountRequest {
	currency := draft.Currency
	if currency == "" {
		currency = "USD"
	}
	return CreateAccountRequest{
		AccountName:    draft.Name,
		AccountType:    string(draft.Type),
		AccountNumber:  draft.Number,
		CurrentBalance: draft.Balance,
		Currency:       currency,
		PlatformID:     draft.PlatformID,
	}
}

// ToEntity converts the response to a domain Account.
func (r AccountResponse) ToEntity() entity.Account {
	account := entity.Account{
		ID:          r.ID,
		Name:        r.AccountName,
		Type:        entity.AccountType(r.AccountType),
		Number:      r.AccountNumber,
		Currency:    r.Currency,
		PlatformID:  r.PlatformID,
		Balance:     r.CurrentBalance,
		Active:      r.IsActive,
		CreatedAt:   r.CreatedAt.Time,
		LastUpdated: r.LastUpdated.Time,
	}
	if r.Platform != nil {
		platform := r.Platform.ToEntity()
		account.Platform = &platform
	}
	return account
}

// ToAccountResponse converts a domain Account to its response.
func ToAccountResponse(a entity.Account) AccountResponse {
	response := AccountResponse{
		ID:             a.ID,
		AccountName:    a.Name,
		AccountType:    string(a.Type),
		AccountNumber:  a.Number,
		CurrentBalance: a.Balance,
		Currency:       a.Currency,
		PlatformID:     a.PlatformID,
		IsActive:       a.Active,
		CreatedAt:      NewTimestamp(a.CreatedAt),
		LastUpdated:    NewTimestamp(a.LastUpdated),
	}
	if a.Platform != nil {
		platform := ToPlatformResponse(*a.Platform)
		response.Platform = &platform
	}
	return response
}

// ToAccountEntities converts a list response.
func ToAccountEntities(responses []AccountResponse) []entity.Account {
	accounts := make([]entity.Account, len(responses))
	for i, r := range responses {
		accounts[i] = r.ToEntity()
	}
	return accounts
}
