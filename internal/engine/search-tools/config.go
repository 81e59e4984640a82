// internal/engine/search-tools/config.go
package searchtools

import "time"

// Config holds the semantic search settings.
type Config struct {
	// EmbeddingModel turns the query into a vector.
	EmbeddingModel string
	// Index is the Elasticsearch index holding the tool vectors.
	Index string
	// VectorField is the dense_vector field name inside the index.
	VectorField string
	// TopK is the default number of hits when the caller passes none.
	TopK int
	// Timeout bounds the embed plus search round trip.
	Timeout time.Duration
}

// DefaultConfig returns the production search settings.
func DefaultConfig() Config {
	return Config{
		EmbeddingModel: "text-embedding-3-small",
		Index:          "tools",
		VectorField:    "embedding",
		TopK:           5,
		Timeout:        5 * time.Second,
	}
}
