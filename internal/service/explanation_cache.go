package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/scholarship-match-api/pkg/errors"
)

const (
	defaultExplanationTTL = 24 * time.Hour
	explanationKeyPrefix  = "explain:"
)

// ExplanationStore persists explanation texts. Implemented by repository.CacheRepository.
type ExplanationStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// ExplanationCache keeps generated explanations per student and scholarship.
// A nil cache, or one without a store, behaves as permanently empty.
type ExplanationCache struct {
	store   ExplanationStore
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewExplanationCache wraps store. A non-positive ttl falls back to one day.
func NewExplanationCache(store ExplanationStore, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *ExplanationCache {
	if ttl <= 0 {
		ttl = defaultExplanationTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExplanationCache{store: store, metrics: metrics, ttl: ttl, logger: logger}
}

// Enabled reports whether lookups can ever hit.
func (c *ExplanationCache) Enabled() bool {
	return c != nil && c.store != nil
}

// Lookup returns the cached explanation for the pair. Store errors count as a miss.
func (c *ExplanationCache) Lookup(ctx context.Context, studentID, scholarshipID string) (string, bool) {
	if !c.Enabled() {
		return "", false
	}
	key := explanationKey(studentID, scholarshipID)

	var text string
	start := time.Now()
	err := c.store.Get(ctx, key, &text)
	elapsed := time.Since(start)

	switch {
	case err == nil && text != "":
		c.metrics.RecordExplanationCache(cacheResultHit, elapsed)
		return text, true
	case err == nil, errors.Is(err, appErrors.ErrCacheMiss):
		c.metrics.RecordExplanationCache(cacheResultMiss, elapsed)
	default:
		c.metrics.RecordExplanationCache(cacheResultError, elapsed)
		c.logger.Warn("explanation cache lookup failed", zap.String("key", key), zap.Error(err))
	}
	return "", false
}

// Store saves a generated explanation. Failures are logged and otherwise ignored.
func (c *ExplanationCache) Store(ctx context.Context, studentID, scholarshipID, text string) {
	if !c.Enabled() || text == "" {
		return
	}
	key := explanationKey(studentID, scholarshipID)
	start := time.Now()
	err := c.store.Set(ctx, key, text, c.ttl)
	c.metrics.ObserveExplanationCacheWrite(time.Since(start))
	if err != nil {
		c.logger.Warn("explanation cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Purge drops cached explanations for one student, or for everyone when studentID is empty.
func (c *ExplanationCache) Purge(ctx context.Context, studentID string) error {
	if !c.Enabled() {
		return nil
	}
	pattern := explanationKeyPrefix + "*"
	if studentID != "" {
		pattern = fmt.Sprintf("%s%s:*", explanationKeyPrefix, studentID)
	}
	if err := c.store.DeleteByPattern(ctx, pattern); err != nil {
		c.logger.Warn("explanation cache purge failed", zap.String("pattern", pattern), zap.Error(err))
		return err
	}
	return nil
}

func explanationKey(studentID, scholarshipID string) string {
	return fmt.Sprintf("%s%s:%s", explanationKeyPrefix, studentID, scholarshipID)
}
