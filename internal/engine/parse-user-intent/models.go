// internal/engine/parse-user-intent/models.go
package parseuserintent

import "toolrouter/internal/models"

// Intent source labels, recorded for metrics and logging.
const (
	SourceFastPath = "fast_path"
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// Input is the parsing request.
type Input struct {
	Query string `json:"query"`
}

// Output carries the parse outcome. Result holds either an intent or an
// intent error, never both. Source says which path produced the intent.
type Output struct {
	Result models.IntentResult `json:"result"`
	Source string              `json:"source"`
}
