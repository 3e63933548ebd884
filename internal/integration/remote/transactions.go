package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// ListTransactions retrieves the most recent transactions, newest first.
func (c *Client) ListTransactions(ctx context.Context, limit int) ([]entity.Transaction, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var response []dto.TransactionResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/transactions", query, nil, &response); err != nil {
		return nil, err
	}
	return dto.ToTransactionEntities(response), nil
}

// CreateTransaction records a transaction and returns the stored record.
func (c *Client) CreateTransaction(ctx context.Context, draft entity.TransactionDraft) (entity.Transaction, error) {
	var response dto.TransactionResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/transactions", nil, dto.ToCreateTransactionRequest(draft), &response); err != nil {
		return entity.Transaction{}, err
	}
	return response.ToEntity(), nil
}
