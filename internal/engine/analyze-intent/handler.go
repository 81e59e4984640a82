// Package analyzeintent orchestrates intent resolution: cache lookup,
// parsing, and selective cache write-back.
package analyzeintent

import (
	"context"
	"strings"

	"toolrouter/internal/common/logger"
	"toolrouter/internal/common/metrics"
	cacheintent "toolrouter/internal/engine/cache-intent"
	parseuserintent "toolrouter/internal/engine/parse-user-intent"
	"toolrouter/internal/models"
)

// SourceCache labels intents served straight from the cache.
const SourceCache = "cache"

// Handler resolves queries to intents, consulting the cache first.
type Handler struct {
	cache  *cacheintent.Handler
	parser *parseuserintent.Handler
	logger logger.Logger
}

// NewHandler wires the orchestrator. The cache may be nil to disable
// caching entirely.
func NewHandler(cache *cacheintent.Handler, parser *parseuserintent.Handler, log logger.Logger) *Handler {
	return &Handler{
		cache:  cache,
		parser: parser,
		logger: log.WithFields(map[string]interface{}{"component": "intent-analyzer"}),
	}
}

// Execute resolves the query to an intent result. Source reports where the
// intent came from: cache, fast_path, llm, or fallback.
func (h *Handler) Execute(ctx context.Context, query string) (models.IntentResult, string, error) {
	if h.cache != nil {
		if cached := h.cache.Get(ctx, query); cached != nil {
			metrics.IntentCacheHits.WithLabelValues("hit").Inc()
			metrics.IntentParses.WithLabelValues(SourceCache).Inc()
			h.logger.Debug("Intent served from cache", map[string]interface{}{"query": query})
			return models.IntentResult{Intent: cached}, SourceCache, nil
		}
		metrics.IntentCacheHits.WithLabelValues("miss").Inc()
	}

	output, err := h.parser.Execute(ctx, &parseuserintent.Input{Query: query})
	if err != nil {
		return models.IntentResult{}, "", err
	}

	if h.cache != nil && cacheable(output) {
		h.cache.Set(ctx, query, output.Result.Intent)
	}

	return output.Result, output.Source, nil
}

// cacheable rejects anything that should be retried on the next identical
// query: errors, degraded fallback intents, and low-signal parses. Caching
// a fallback would mask reasoning-service recovery for a full TTL.
func cacheable(output *parseuserintent.Output) bool {
	intent := output.Result.Intent
	if intent == nil {
		return false
	}
	if output.Source != parseuserintent.SourceLLM {
		return false
	}
	if strings.Contains(strings.ToLower(intent.Reasoning), "fallback") {
		return false
	}
	return intent.Confidence >= 0.5
}
