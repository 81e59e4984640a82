// internal/models/intent.go
package models

// Complexity tiers for a parsed intent.
const (
	ComplexitySimple    = "simple"
	ComplexityMultiStep = "multi-step"
)

// Constraint value sets understood by the scorer.
const (
	PricingFree     = "free"
	PricingFreemium = "freemium"
	PricingPaid     = "paid"

	SpeedFast    = "fast"
	SpeedQuality = "quality"

	ExpertiseBeginner = "beginner"
	ExpertiseAdvanced = "advanced"
)

// Constraints captures the soft preferences extracted from a query.
type Constraints struct {
	Pricing   string `json:"pricing,omitempty"`
	Speed     string `json:"speed,omitempty"`
	Expertise string `json:"expertise,omitempty"`
	Language  string `json:"language,omitempty"`
}

// ParsedIntent is the structured interpretation of one query. Created fresh
// per request, never mutated after creation. Complexity == multi-step
// implies EstimatedSteps >= 2.
type ParsedIntent struct {
	PrimaryCategory     Category    `json:"primaryCategory"`
	SecondaryCategories []Category  `json:"secondaryCategories"`
	Confidence          float64     `json:"confidence"`
	UserGoal            string      `json:"userGoal"`
	Constraints         Constraints `json:"constraints"`
	Keywords            []string    `json:"keywords"`
	Reasoning           string      `json:"reasoning"`
	Complexity          string      `json:"complexity"`
	EstimatedSteps      int         `json:"estimatedSteps,omitempty"`
	WorkflowHints       []string    `json:"workflowHints,omitempty"`
}

// IsMultiStep reports whether the intent calls for a workflow.
func (p *ParsedIntent) IsMultiStep() bool {
	return p.Complexity == ComplexityMultiStep
}

// IntentError codes. These are the only terminal parser outcomes besides a
// valid intent.
const (
	IntentErrLowConfidence = "LOW_CONFIDENCE"
	IntentErrParseError    = "PARSE_ERROR"
	IntentErrAPIError      = "API_ERROR"
)

// IntentError is the parser's failure outcome, distinct from ParsedIntent.
// Callers must discriminate before touching intent fields.
type IntentError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (e *IntentError) Error() string {
	return e.Code + ": " + e.Message
}

// IntentResult is the union of ParsedIntent and IntentError. Exactly one
// field is non-nil.
type IntentResult struct {
	Intent *ParsedIntent
	Err    *IntentError
}

// OK reports whether the result carries a usable intent.
func (r IntentResult) OK() bool {
	return r.Intent != nil
}
