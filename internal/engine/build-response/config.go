// internal/engine/build-response/config.go
package buildresponse

// Config holds the response assembly settings.
type Config struct {
	// MaxAlternatives caps the alternative list of a simple recommendation.
	MaxAlternatives int
}

// DefaultConfig returns the production response settings.
func DefaultConfig() Config {
	return Config{
		MaxAlternatives: 3,
	}
}
