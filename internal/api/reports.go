package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultAnalyticsWindowDays is the analytics window used when none is given.
const DefaultAnalyticsWindowDays = 30

// DashboardStats fetches the aggregate dashboard metrics.
func (c *Client) DashboardStats(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/reports/dashboard", nil, nil)
}

// Analytics fetches the time-windowed analytics report. windowDays <= 0 uses
// DefaultAnalyticsWindowDays.
func (c *Client) Analytics(ctx context.Context, windowDays int) (json.RawMessage, error) {
	if windowDays <= 0 {
		windowDays = DefaultAnalyticsWindowDays
	}
	query := url.Values{"days": []string{strconv.Itoa(windowDays)}}
	return c.do(ctx, http.MethodGet, "/reports/analytics", query, nil)
}
