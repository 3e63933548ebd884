package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// Login exchanges an email and password for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var response dto.TokenResponse
	if err := c.doForm(ctx, "/api/login", form, &response); err != nil {
		return "", err
	}
	if response.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access token")
	}
	return response.AccessToken, nil
}

// Register creates a new user.
func (c *Client) Register(ctx context.Context, registration entity.Registration) error {
	return c.doJSON(ctx, http.MethodPost, "/api/register", nil, dto.ToRegisterRequest(registration), nil)
}

// CurrentUser retrieves the user the current credential belongs to.
func (c *Client) CurrentUser(ctx context.Context) (entity.User, error) {
	var response dto.UserResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/me", nil, nil, &response); err != nil {
		return entity.User{}, err
	}
	return response.ToEntity(), nil
}
