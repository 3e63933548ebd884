package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// ListAccounts retrieves the user's accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]entity.Account, error) {
	var response []dto.AccountResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/accounts", nil, nil, &response); err != nil {
		return nil, err
	}
	return dto.ToAccountEntities(response), nil
}

// CreateAccount creates an account and returns the stored record.
func (c *Client) CreateAccount(ctx context.Context, draft entity.AccountDraft) (entity.Account, error) {
	var response dto.AccountResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/accounts", nil, dto.ToCreateAccountRequest(draft), &response); err != nil {
		return entity.Account{}, err
	}
	return response.ToEntity(), nil
}

// UpdateAccountBalance sets an account's balance to an absolute value.
func (c *Client) UpdateAccountBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error {
	path := fmt.Sprintf("/api/accounts/%d/balance", accountID)
	return c.doJSON(ctx, http.MethodPut, path, nil, dto.UpdateBalanceRequest{NewBalance: balance}, nil)
}

// DeleteAccount deletes an account.
func (c *Client) DeleteAccount(ctx context.Context, accountID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/accounts/%d", accountID), nil, nil, nil)
}
