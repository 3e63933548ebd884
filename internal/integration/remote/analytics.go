package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// GetOverview retrieves the service's pre-aggregated overview.
func (c *Client) GetOverview(ctx context.Context) (entity.Overview, error) {
	var response dto.OverviewResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/analytics/overview", nil, nil, &response); err != nil {
		return entity.Overview{}, err
	}
	return response.ToEntity(), nil
}

// GetMonthlyMetrics retrieves income, expenses and savings rate for a month.
func (c *Client) GetMonthlyMetrics(ctx context.Context, year, month int) (entity.MonthlyMetrics, error) {
	var response dto.MonthlyMetricsResponse
	path := fmt.Sprintf("/api/analytics/monthly/%d/%d", year, month)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &response); err != nil {
		return entity.MonthlyMetrics{}, err
	}
	return response.ToEntity(year, month), nil
}
