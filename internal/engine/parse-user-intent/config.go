// internal/engine/parse-user-intent/config.go
package parseuserintent

import "time"

// Config holds intent parsing settings.
type Config struct {
	Model              string
	Temperature        float32
	MaxTokens          int
	Timeout            time.Duration
	FastPathMaxWords   int
	MinConfidence      float64
	FallbackConfidence float64
	DefaultMultiSteps  int
}

// DefaultConfig returns the standard parser settings.
func DefaultConfig() *Config {
	return &Config{
		Model:              "gpt-4o-mini",
		Temperature:        0.3,
		MaxTokens:          600,
		Timeout:            15 * time.Second,
		FastPathMaxWords:   4,
		MinConfidence:      0.5,
		FallbackConfidence: 0.6,
		DefaultMultiSteps:  4,
	}
}
