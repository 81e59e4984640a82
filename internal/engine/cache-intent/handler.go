// Package cacheintent caches parsed intents in Redis keyed by the
// normalized query text. The cache is a best-effort side channel: every
// failure degrades to a miss and the pipeline proceeds without it.
package cacheintent

import (
	"context"
	"encoding/json"
	"strings"

	"toolrouter/internal/common/logger"
	"toolrouter/internal/models"

	"github.com/redis/go-redis/v9"
)

// Handler reads and writes cached intents.
type Handler struct {
	config *Config
	client redis.Cmdable
	logger logger.Logger
}

// NewHandler creates an intent cache handler.
func NewHandler(config *Config, client redis.Cmdable, log logger.Logger) *Handler {
	if config == nil {
		config = DefaultConfig()
	}
	return &Handler{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "intent-cache"}),
	}
}

// Key returns the cache key for a query: prefix plus the lowercased,
// trimmed query with runs of whitespace collapsed to single spaces.
func (h *Handler) Key(query string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	return h.config.Prefix + normalized
}

// Get returns the cached intent for the query, or nil on miss. Store errors
// and corrupt payloads are logged and reported as misses.
func (h *Handler) Get(ctx context.Context, query string) *models.ParsedIntent {
	key := h.Key(query)

	raw, err := h.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		h.logger.Warn("Intent cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil
	}

	var intent models.ParsedIntent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		h.logger.Warn("Corrupt cached intent, treating as miss", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil
	}

	h.logger.Debug("Intent cache hit", map[string]interface{}{"key": key})
	return &intent
}

// Set stores the intent under the query's key with the configured TTL.
// Write errors are logged and swallowed.
func (h *Handler) Set(ctx context.Context, query string, intent *models.ParsedIntent) {
	if intent == nil {
		return
	}
	key := h.Key(query)

	payload, err := json.Marshal(intent)
	if err != nil {
		h.logger.Warn("Failed to encode intent for cache", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}

	if err := h.client.Set(ctx, key, payload, h.config.TTL).Err(); err != nil {
		h.logger.Warn("Intent cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}

	h.logger.Debug("Intent cached", map[string]interface{}{"key": key})
}
