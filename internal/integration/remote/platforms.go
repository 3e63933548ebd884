package remote

import (
	"context"
	"net/http"

	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// ListPlatforms retrieves the available platforms.
func (c *Client) ListPlatforms(ctx context.Context) ([]entity.Platform, error) {
	var response []dto.PlatformResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/platforms", nil, nil, &response); err != nil {
		return nil, err
	}

	platforms := make([]entity.Platform, len(response))
	for i, r := range response {
		platforms[i] = r.ToEntity()
	}
	return platforms, nil
}

// CreatePlatform creates a platform and returns the stored record.
func (c *Client) CreatePlatform(ctx context.Context, draft entity.PlatformDraft) (entity.Platform, error) {
	var response dto.PlatformResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/platforms", nil, dto.ToCreatePlatformRequest(draft), &response); err != nil {
		return entity.Platform{}, err
	}
	return response.ToEntity(), nil
}
