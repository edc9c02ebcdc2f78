package api

import (
	"context"

	"pracd-client/internal/model"
)

// AdminStats queries the dedicated aggregate endpoint. Callers that need
// resilience derive the same numbers from the full lists when this fails;
// see the dashboard package.
func (c *Client) AdminStats(ctx context.Context) (model.AdminStats, error) {
	var stats model.AdminStats
	if err := c.get(ctx, "/api/admin/stats", bearer, &stats, "failed to load stats"); err != nil {
		return model.AdminStats{}, err
	}
	return stats, nil
}
