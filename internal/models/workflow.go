// internal/models/workflow.go
package models

// MediaType describes what a workflow step consumes or produces.
type MediaType string

const (
	MediaText     MediaType = "text"
	MediaImage    MediaType = "image"
	MediaAudio    MediaType = "audio"
	MediaVideo    MediaType = "video"
	MediaData     MediaType = "data"
	MediaCode     MediaType = "code"
	MediaDocument MediaType = "document"
)

// WorkflowStepTemplate is one hand-authored step inside a template.
type WorkflowStepTemplate struct {
	Order          int       `json:"order"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       Category  `json:"category"`
	InputType      MediaType `json:"inputType"`
	OutputType     MediaType `json:"outputType"`
	Capabilities   []string  `json:"capabilities"`
	PromptTemplate string    `json:"promptTemplate,omitempty"`
	Tips           []string  `json:"tips,omitempty"`
	Optional       bool      `json:"optional,omitempty"`
}

// WorkflowTemplate is a static multi-step plan. The full set forms a fixed
// library, immutable at runtime.
type WorkflowTemplate struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	NameEN            string                 `json:"nameEn"`
	Description       string                 `json:"description"`
	Triggers          []string               `json:"triggers"`
	Steps             []WorkflowStepTemplate `json:"steps"`
	Complexity        string                 `json:"complexity"` // simple | medium | complex
	EstimatedDuration string                 `json:"estimatedDuration"`
	Tags              []string               `json:"tags"`
}

// StepToolRecommendation pairs a tool with its step score and reasoning.
type StepToolRecommendation struct {
	Tool      Tool    `json:"tool"`
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// WorkflowStepRecommendation is one fully assigned step of a generated
// workflow. Primary and Alternative are always populated — the assigner
// synthesizes a generic fallback rather than leave a step empty.
type WorkflowStepRecommendation struct {
	Order            int                    `json:"order"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	Category         Category               `json:"category"`
	Primary          StepToolRecommendation `json:"primary"`
	Alternative      StepToolRecommendation `json:"alternative"`
	PromptSuggestion string                 `json:"promptSuggestion,omitempty"`
	Tips             []string               `json:"tips,omitempty"`
}

// GeneratedWorkflow is the runtime result of matching a template against a
// query and assigning tools per step. Created once per request, not
// persisted.
type GeneratedWorkflow struct {
	TemplateID        string                       `json:"templateId"`
	TemplateName      string                       `json:"templateName"`
	UserQuery         string                       `json:"userQuery"`
	Steps             []WorkflowStepRecommendation `json:"steps"`
	TotalSteps        int                          `json:"totalSteps"`
	EstimatedDuration string                       `json:"estimatedDuration"`
	Complexity        string                       `json:"complexity"`
	Categories        []Category                   `json:"categories"`
}
