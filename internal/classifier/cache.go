package classifier

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/rosterfit/internal/models"
)

// CacheKey identifies one player's prediction. Identical measurements
// produce identical keys, so repeat evaluations of the same recruit hit
// the cache regardless of which program they target.
type CacheKey struct {
	fingerprint string
}

// NewCacheKey derives the cache key from a player's measurements.
func NewCacheKey(player models.PlayerStats) CacheKey {
	var b strings.Builder
	b.WriteString(strings.ToUpper(player.Position))
	for _, v := range []*float64{
		player.ExitVelo,
		player.SixtyTime,
		player.InfieldVelo,
		player.OutfieldVelo,
		player.CatcherVelo,
		player.PopTime,
		player.Height,
		player.Weight,
	} {
		if v == nil {
			b.WriteString(":-")
		} else {
			fmt.Fprintf(&b, ":%.3f", *v)
		}
	}
	return CacheKey{fingerprint: b.String()}
}

// String returns string representation of cache key
func (k CacheKey) String() string {
	return k.fingerprint
}

// PredictionCache provides in-memory caching for classifier signals
type PredictionCache struct {
	cache     *cache.Cache
	ttl       time.Duration
	maxSize   int
	mu        sync.RWMutex
	hitCount  uint64
	missCount uint64
}

// NewPredictionCache creates a new prediction cache
func NewPredictionCache(ttl time.Duration, maxSize int) *PredictionCache {
	return &PredictionCache{
		cache:   cache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get retrieves a cached signal
func (pc *PredictionCache) Get(ctx context.Context, key CacheKey) *models.ClassifierSignal {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if result, found := pc.cache.Get(key.String()); found {
		pc.hitCount++
		pc.updateMetrics()
		if signal, ok := result.(*models.ClassifierSignal); ok {
			return signal
		}
	}

	pc.missCount++
	pc.updateMetrics()
	return nil
}

// Set stores a signal in cache
func (pc *PredictionCache) Set(ctx context.Context, key CacheKey, signal *models.ClassifierSignal) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.cache.ItemCount() >= pc.maxSize {
		pc.cache.DeleteExpired()
	}

	pc.cache.Set(key.String(), signal, pc.ttl)
}

// Clear flushes the entire cache
func (pc *PredictionCache) Clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.cache.Flush()
	pc.hitCount = 0
	pc.missCount = 0
}

// Stats returns cache statistics
func (pc *PredictionCache) Stats() (hits, misses uint64, ratio float64) {
	hits = pc.hitCount
	misses = pc.missCount
	total := hits + misses
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// updateMetrics updates Prometheus metrics
func (pc *PredictionCache) updateMetrics() {
	_, _, ratio := pc.Stats()
	CacheHitRatio.Set(ratio)
}

// ItemCount returns the number of items in cache
func (pc *PredictionCache) ItemCount() int {
	return pc.cache.ItemCount()
}
