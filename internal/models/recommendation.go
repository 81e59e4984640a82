// internal/models/recommendation.go
package models

// Recommendation response types.
const (
	ResponseTypeSimple   = "simple"
	ResponseTypeWorkflow = "workflow"
	ResponseTypeError    = "error"
)

// ToolRecommendation is one ranked tool plus the reason it was picked.
type ToolRecommendation struct {
	Tool      Tool    `json:"tool"`
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// SimpleRecommendation is the single-tool answer: a main pick with up to
// three alternatives.
type SimpleRecommendation struct {
	Category     Category             `json:"category"`
	Main         ToolRecommendation   `json:"main"`
	Alternatives []ToolRecommendation `json:"alternatives"`
}

// RecommendationResponse is the core-exposed result. Type selects which of
// the payload fields is set; Error responses carry a user-facing message and
// example rephrasings.
type RecommendationResponse struct {
	RequestID string `json:"requestId"`
	Type      string `json:"type"`

	Simple   *SimpleRecommendation `json:"simple,omitempty"`
	Workflow *GeneratedWorkflow    `json:"workflow,omitempty"`

	ErrorCode   string   `json:"errorCode,omitempty"`
	Message     string   `json:"message,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}
