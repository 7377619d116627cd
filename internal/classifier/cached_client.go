package classifier

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/rosterfit/internal/config"
	"github.com/yourusername/rosterfit/internal/models"
)

// Predictor is the interface the evaluation service depends on.
type Predictor interface {
	Predict(ctx context.Context, player models.PlayerStats) (*models.ClassifierSignal, error)
	HealthCheck(ctx context.Context) error
}

// CachedClient wraps Client with prediction caching
type CachedClient struct {
	client Predictor
	cache  *PredictionCache
	logger *logrus.Logger
}

// NewCachedClient creates a new cached classifier client
func NewCachedClient(cfg *config.ClassifierConfig, logger *logrus.Logger) *CachedClient {
	return &CachedClient{
		client: NewClient(cfg, logger),
		cache: NewPredictionCache(
			time.Duration(cfg.CacheTTLSeconds)*time.Second,
			cfg.CacheMaxSize,
		),
		logger: logger,
	}
}

// newCachedClientWith wires an explicit predictor, for tests.
func newCachedClientWith(client Predictor, cache *PredictionCache, logger *logrus.Logger) *CachedClient {
	return &CachedClient{client: client, cache: cache, logger: logger}
}

// Predict retrieves a classification with caching
func (c *CachedClient) Predict(ctx context.Context, player models.PlayerStats) (*models.ClassifierSignal, error) {
	cacheKey := NewCacheKey(player)

	if cached := c.cache.Get(ctx, cacheKey); cached != nil {
		c.logger.WithField("cache_key", cacheKey.String()).Debug("Cache hit for prediction")
		PredictionsTotal.WithLabelValues("cache", "true").Inc()
		return cached, nil
	}

	c.logger.WithField("cache_key", cacheKey.String()).Debug("Cache miss, fetching from classifier service")
	signal, err := c.client.Predict(ctx, player)
	if err != nil {
		return nil, err
	}

	c.cache.Set(ctx, cacheKey, signal)
	PredictionsTotal.WithLabelValues("http", "false").Inc()
	return signal, nil
}

// HealthCheck checks the underlying classifier service
func (c *CachedClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}

// ClearCache clears all cached predictions
func (c *CachedClient) ClearCache() {
	c.cache.Clear()
}

// CacheStats returns cache statistics
func (c *CachedClient) CacheStats() (hits, misses uint64, hitRatio float64) {
	return c.cache.Stats()
}

// CacheSize returns the number of cached predictions
func (c *CachedClient) CacheSize() int {
	return c.cache.ItemCount()
}
