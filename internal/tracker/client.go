// Package tracker fetches activities from the fitness-tracker API and
// validates them before they reach the aggregation core.
package tracker

import (
	"context"
	"time"
)

// Config holds the connection settings for the tracker API.
type Config struct {
	BaseURL     string
	AccessToken string

	// Performance Settings
	PageSize     int
	RequestDelay time.Duration
}

// Client is the interface for fetching athlete activities.
type Client interface {
	// Activities returns all activities started after the given cursor,
	// oldest first. A zero cursor fetches the full history.
	Activities(ctx context.Context, after time.Time) ([]Activity, error)
}

// NewClient creates a tracker client based on the provided configuration.
func NewClient(cfg Config) Client {
	return newHTTPClient(cfg)
}
