// Package ratings pulls program strength ratings from the external feed.
package ratings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/rosterfit/internal/config"
)

// FeedClient fetches ratings snapshots from the provider.
type FeedClient struct {
	http    *RateLimitedHTTPClient
	baseURL string
	apiKey  string
	logger  *logrus.Logger
}

// NewFeedClient creates a feed client from application configuration.
func NewFeedClient(cfg *config.RatingsConfig, logger *logrus.Logger) *FeedClient {
	httpCfg := DefaultHTTPClientConfig()
	httpCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = cfg.MaxRetries
	httpCfg.RateLimit = cfg.RequestsPerSecond

	return &FeedClient{
		http:    NewRateLimitedHTTPClient(httpCfg, logger),
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// FetchRatings retrieves the current ratings snapshot for all divisions.
func (c *FeedClient) FetchRatings(ctx context.Context) (*FeedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/ratings", nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("ratings feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ratings feed returned status %d: %s", resp.StatusCode, string(body))
	}

	var feed FeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode ratings feed: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"season":  feed.Season,
		"records": len(feed.Records),
	}).Debug("Ratings snapshot fetched")

	return &feed, nil
}

// Close releases the underlying HTTP client resources.
func (c *FeedClient) Close() error {
	return c.http.Close()
}
