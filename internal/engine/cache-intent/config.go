// internal/engine/cache-intent/config.go
package cacheintent

import "time"

// Config holds intent cache settings.
type Config struct {
	Prefix string
	TTL    time.Duration
}

// DefaultConfig returns the standard cache settings.
func DefaultConfig() *Config {
	return &Config{
		Prefix: "intent:",
		TTL:    24 * time.Hour,
	}
}
