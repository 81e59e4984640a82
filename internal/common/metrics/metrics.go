// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation responses by response type",
		},
		[]string{"response_type"},
	)

	RecommendationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_errors_total",
			Help: "Total number of failed recommendation requests by error code",
		},
		[]string{"error_code"},
	)

	IntentParses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intent_parses_total",
			Help: "Total number of intent parses by source (cache, fast_path, llm, fallback)",
		},
		[]string{"source"},
	)

	ExternalCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "external_call_duration_seconds",
			Help: "Duration of external service calls in seconds",
		},
		[]string{"service"},
	)

	IntentCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intent_cache_requests_total",
			Help: "Total intent cache lookups by outcome (hit, miss, error)",
		},
		[]string{"outcome"},
	)
)
