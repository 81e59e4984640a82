// internal/engine/generate-workflow/handler.go
// ============================================
// WORKFLOW GENERATOR
// Expands a matched template into a concrete plan by assigning a primary
// and alternative tool to every step.
// ============================================
package generateworkflow

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"toolrouter/internal/common/logger"
	ranktools "toolrouter/internal/engine/rank-tools"
	"toolrouter/internal/models"
)

// fallbackScore is reported for the synthesized general-purpose assistants
// when a step's category has no catalog tools at all.
const fallbackScore = 8

// CategoryToolSource hands out catalog tools for one category.
type CategoryToolSource interface {
	GetToolsByCategory(ctx context.Context, category models.Category) []models.Tool
}

// Input pairs the selected template with the intent and the original query.
type Input struct {
	Template *models.WorkflowTemplate
	Intent   *models.ParsedIntent
	Query    string
}

// Handler assigns tools to workflow template steps.
type Handler struct {
	tools  CategoryToolSource
	logger logger.Logger
}

// NewHandler creates a workflow generator backed by the given tool source.
func NewHandler(tools CategoryToolSource, log logger.Logger) *Handler {
	return &Handler{
		tools:  tools,
		logger: log.WithFields(map[string]interface{}{"component": "generate-workflow"}),
	}
}

// Execute builds the full workflow: every template step gets a primary and
// an alternative tool, never left empty. Steps whose category has no
// catalog coverage fall back to general-purpose assistants.
func (h *Handler) Execute(ctx context.Context, input Input) (*models.GeneratedWorkflow, error) {
	if input.Template == nil {
		return nil, fmt.Errorf("generate workflow: template is required")
	}
	if input.Intent == nil {
		return nil, fmt.Errorf("generate workflow: intent is required")
	}

	tpl := input.Template
	steps := make([]models.WorkflowStepRecommendation, 0, len(tpl.Steps))
	for _, stepTpl := range tpl.Steps {
		steps = append(steps, h.assignStep(ctx, stepTpl, input.Intent))
	}

	h.logger.Info("Workflow generated", map[string]interface{}{
		"templateId": tpl.ID,
		"steps":      len(steps),
	})

	return &models.GeneratedWorkflow{
		TemplateID:        tpl.ID,
		TemplateName:      tpl.Name,
		UserQuery:         input.Query,
		Steps:             steps,
		TotalSteps:        len(steps),
		EstimatedDuration: tpl.EstimatedDuration,
		Complexity:        tpl.Complexity,
		Categories:        uniqueCategories(tpl.Steps),
	}, nil
}

func (h *Handler) assignStep(
	ctx context.Context,
	stepTpl models.WorkflowStepTemplate,
	intent *models.ParsedIntent,
) models.WorkflowStepRecommendation {
	candidates := h.tools.GetToolsByCategory(ctx, stepTpl.Category)

	type scoredTool struct {
		tool  models.Tool
		score float64
	}
	scored := make([]scoredTool, 0, len(candidates))
	for _, tool := range candidates {
		if tool.Deprecated {
			continue
		}
		score := ranktools.ScoreTool(tool, intent, ranktools.ScoreOptions{
			Capabilities: stepTpl.Capabilities,
		})
		scored = append(scored, scoredTool{tool: tool, score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	rec := models.WorkflowStepRecommendation{
		Order:            stepTpl.Order,
		Name:             stepTpl.Name,
		Description:      stepTpl.Description,
		Category:         stepTpl.Category,
		PromptSuggestion: stepTpl.PromptTemplate,
		Tips:             stepTpl.Tips,
	}

	if len(scored) > 0 {
		rec.Primary = models.StepToolRecommendation{
			Tool:      scored[0].tool,
			Score:     scored[0].score,
			Reasoning: stepReasoning(scored[0].tool, stepTpl, intent),
		}
	} else {
		rec.Primary = fallbackRecommendation(stepTpl.Category, true)
	}

	if len(scored) > 1 {
		rec.Alternative = models.StepToolRecommendation{
			Tool:      scored[1].tool,
			Score:     scored[1].score,
			Reasoning: stepReasoning(scored[1].tool, stepTpl, intent),
		}
	} else {
		rec.Alternative = fallbackRecommendation(stepTpl.Category, false)
	}

	return rec
}

// stepReasoning explains a pick in at most three reasons, most specific
// first.
func stepReasoning(tool models.Tool, stepTpl models.WorkflowStepTemplate, intent *models.ParsedIntent) string {
	var reasons []string

	for _, capability := range stepTpl.Capabilities {
		if bidirectionalMatch(tool.BestFor, capability) {
			reasons = append(reasons, fmt.Sprintf("expert at %q", capability))
			break
		}
	}

	if intent.Constraints.Pricing == models.PricingFree && tool.Pricing.Free {
		reasons = append(reasons, "free to use")
	}

	if tool.Strength > 9.5 {
		reasons = append(reasons, "best in class")
	} else if tool.Strength > 9 {
		reasons = append(reasons, "very high quality")
	}

	if len(tool.Features) > 0 {
		reasons = append(reasons, fmt.Sprintf("offers %s", tool.Features[0]))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("a strong option in the %s category", stepTpl.Category))
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return strings.Join(reasons, ", ") + "."
}

func bidirectionalMatch(entries []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, entry := range entries {
		entry = strings.ToLower(entry)
		if strings.Contains(entry, needle) || strings.Contains(needle, entry) {
			return true
		}
	}
	return false
}

// fallbackRecommendation synthesizes a general-purpose assistant so a step
// is never left without tools.
func fallbackRecommendation(category models.Category, primary bool) models.StepToolRecommendation {
	tool := models.Tool{
		Name:        "Claude AI (Claude 4)",
		Category:    category,
		Description: "General-purpose AI assistant",
		URL:         "https://claude.ai",
		Pricing: models.Pricing{
			Free:          true,
			Freemium:      true,
			StartingPrice: 20,
			Currency:      "USD",
		},
		BestFor:  []string{"general purpose", "content creation", "writing"},
		Strength: 9.5,
	}
	if primary {
		tool.Name = "ChatGPT (GPT-5)"
		tool.URL = "https://chat.openai.com"
	}
	return models.StepToolRecommendation{
		Tool:      tool,
		Score:     fallbackScore,
		Reasoning: "No specialized tool found for this step, a general-purpose assistant is suggested.",
	}
}

func uniqueCategories(steps []models.WorkflowStepTemplate) []models.Category {
	seen := make(map[models.Category]bool)
	out := make([]models.Category, 0, len(steps))
	for _, step := range steps {
		if !seen[step.Category] {
			seen[step.Category] = true
			out = append(out, step.Category)
		}
	}
	return out
}
