package campussdk

import (
	"context"
	"encoding/json"
	"net/http"
)

// HealthCheck probes GET /health without credentials. It reports the
// backend's own status when one is returned, and "offline" on any failure.
// The result is advisory only.
func (c *SDKClient) HealthCheck(ctx context.Context) Health {
	offline := Health{Status: HealthStatusOffline, Message: MessageOffline}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/health"), nil)
	if err != nil {
		return offline
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Backend connection failed", "base_url", c.BaseURL, "error", err)
		return offline
	}
	defer resp.Body.Close()

	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil || health.Status == "" {
		c.logger.WarnContext(ctx, "Unreadable health response", "status", resp.StatusCode, "error", err)
		return offline
	}

	return health
}
