package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID       int64           `json:"account_id" binding:"required"`
	TransactionType string          `json:"transaction_type" binding:"required,oneof=income expense transfer"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	TransactionDate Timestamp       `json:"transaction_date"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              int64            `json:"id"`
	UserID          int64            `json:"user_id"`
	AccountID       int64            `json:"account_id"`
	TransactionType string           `json:"transaction_type"`
	Category        string           `json:"category"`
	Amount          decimal.Decimal  `json:"amount"`
	Description     string           `json:"description"`
	TransactionDate Timestamp        `json:"transaction_date"`
	CreatedAt       Timestamp        `json:"created_at"`
	Account         *AccountResponse `json:"account,omitempty"`
}

// ToCreateTransactionRequest converts a draft to its request body.
func ToCreateTransactionRequest(draft entity.TransactionDraft) CreateTransactionRequest {
	return CreateTransactionRequest{
		AccountID:       draft.AccountID,
		TransactionType: string(draft.Type),
		Category:        draft.Category,
		Amount:          draft.Amount,
		Description:     draft.Description,
		TransactionDate: NewTimestamp(draft.OccurredAt),
	}
}

// ToEntity converts the response to a domain Transaction.
func (r TransactionResponse) ToEntity() entity.Transaction {
	return entity.Transaction{
		ID:          r.ID,
		AccountID:   r.AccountID,
		Type:        entity.TransactionType(r.TransactionType),
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
		OccurredAt:  r.TransactionDate.Time,
		CreatedAt:   r.CreatedAt.Time,
	}
}

// ToTransactionResponse converts a domain Transaction to its response.
func ToTransactionResponse(t entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		AccountID:       t.AccountID,
		TransactionType: string(t.Type),
		Category:        t.Category,
		Amount:          t.Amount,
		Description:     t.Description,
		TransactionDate: NewTimestamp(t.OccurredAt),
		CreatedAt:       NewTimestamp(t.CreatedAt),
	}
}

// ToTransactionEntities converts a list response.
func ToTransactionEntities(responses []TransactionResponse) []entity.Transaction {
	transactions := make([]entity.Transaction, len(responses))
	for i, r := range responses {
		transactions[i] = r.ToEntity()
	}
	return transactions
}
