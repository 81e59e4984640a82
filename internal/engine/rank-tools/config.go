// internal/engine/rank-tools/config.go
package ranktools

// Config holds ranking settings.
type Config struct {
	// MaxAlternatives caps how many runner-up tools Execute reports after
	// the top result.
	MaxAlternatives int
}

// DefaultConfig returns the standard ranking settings.
func DefaultConfig() *Config {
	return &Config{
		MaxAlternatives: 3,
	}
}
