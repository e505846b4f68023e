// Package cache provides caching for consensus predictions.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/yourusername/match-oracle/internal/metrics"
	"github.com/yourusername/match-oracle/internal/models"
)

// CacheKey identifies a cached prediction. RequestID is derived from the
// canonical request body, so equal requests share a key.
type CacheKey struct {
	Variant   models.Variant
	RequestID uuid.UUID
}

// String returns string representation of cache key
func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%s", k.Variant, k.RequestID)
}

// PredictionCache provides in-memory caching for consensus results
type PredictionCache struct {
	cache     *gocache.Cache
	ttl       time.Duration
	maxSize   int
	mu        sync.RWMutex
	hitCount  uint64
	missCount uint64
}

// NewPredictionCache creates a new prediction cache
func NewPredictionCache(ttl time.Duration, maxSize int) *PredictionCache {
	return &PredictionCache{
		cache:   gocache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get retrieves a cached prediction
func (pc *PredictionCache) Get(ctx context.Context, key CacheKey) *models.ConsensusResult {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if result, found := pc.cache.Get(key.String()); found {
		if pred, ok := result.(*models.ConsensusResult); ok {
			pc.hitCount++
			pc.updateMetrics()
			return pred
		}
	}

	pc.missCount++
	pc.updateMetrics()
	return nil
}

// Set stores a prediction in cache. It reports false when the cache is full
// even after expired entries were dropped.
func (pc *PredictionCache) Set(ctx context.Context, key CacheKey, prediction *models.ConsensusResult) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	k := key.String()
	if _, exists := pc.cache.Get(k); !exists && pc.cache.ItemCount() >= pc.maxSize {
		// Remove expired items first
		pc.cache.DeleteExpired()
		if pc.cache.ItemCount() >= pc.maxSize {
			return false
		}
	}

	pc.cache.Set(k, prediction, pc.ttl)
	return true
}

// Invalidate removes all cache entries for a prediction variant
func (pc *PredictionCache) Invalidate(ctx context.Context, variant models.Variant) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	prefix := string(variant) + ":"
	for k := range pc.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			pc.cache.Delete(k)
		}
	}
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
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return pc.statsLocked()
}

func (pc *PredictionCache) statsLocked() (hits, misses uint64, ratio float64) {
	hits = pc.hitCount
	misses = pc.missCount
	total := hits + misses
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// updateMetrics updates Prometheus metrics. Callers hold pc.mu.
func (pc *PredictionCache) updateMetrics() {
	_, _, ratio := pc.statsLocked()
	metrics.UpdateCacheHitRatio(ratio)
}

// ItemCount returns the number of items in cache
func (pc *PredictionCache) ItemCount() int {
	return pc.cache.ItemCount()
}
