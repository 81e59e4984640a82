// internal/engine/select-template/config.go
package selecttemplate

// Config holds the matcher thresholds.
type Config struct {
	// MinScore is the lowest match score that still selects a template.
	// Anything below it means the query has no workflow shape.
	MinScore float64
}

// DefaultConfig returns the production matcher settings.
func DefaultConfig() Config {
	return Config{
		MinScore: 5,
	}
}
