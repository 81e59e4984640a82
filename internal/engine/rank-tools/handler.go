// Package ranktools filters the catalog against an intent and sorts the
// survivors by the additive match score.
package ranktools

import (
	"context"
	"sort"

	"toolrouter/internal/common/logger"
	"toolrouter/internal/models"
)

// ToolSource provides the current catalog. Satisfied by catalog.Store.
type ToolSource interface {
	GetTools(ctx context.Context) []models.Tool
}

// ScoredTool pairs a tool with its computed score.
type ScoredTool struct {
	Tool  models.Tool `json:"tool"`
	Score float64     `json:"score"`
}

// Input is the ranking request.
type Input struct {
	Intent        *models.ParsedIntent
	PricingFilter string
}

// Output is the ranked result. Ranked is empty, never nil, when nothing
// survives filtering.
type Output struct {
	Ranked []ScoredTool `json:"ranked"`
}

// Handler ranks catalog tools against an intent.
type Handler struct {
	config *Config
	tools  ToolSource
	logger logger.Logger
}

// NewHandler creates a ranking handler.
func NewHandler(config *Config, tools ToolSource, log logger.Logger) *Handler {
	if config == nil {
		config = DefaultConfig()
	}
	return &Handler{
		config: config,
		tools:  tools,
		logger: log.WithFields(map[string]interface{}{"component": "tool-ranker"}),
	}
}

// Execute filters by category and pricing, then sorts descending by score.
// Ties keep catalog order (stable sort). An empty result is a valid outcome,
// not an error.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	catalog := h.tools.GetTools(ctx)

	candidates := filterByCategory(catalog, input.Intent)
	candidates = filterByPricing(candidates, input.PricingFilter)

	scored := make([]ScoredTool, 0, len(candidates))
	for _, tool := range candidates {
		scored = append(scored, ScoredTool{
			Tool:  tool,
			Score: ScoreTool(tool, input.Intent, ScoreOptions{PricingFilter: input.PricingFilter}),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	h.logger.Debug("Tools ranked", map[string]interface{}{
		"candidates": len(scored),
		"category":   categoryOf(input.Intent),
	})
	return &Output{Ranked: scored}, nil
}

// filterByCategory keeps tools in the intent's primary category, falling
// back to the whole catalog when the category has no tools.
func filterByCategory(catalog []models.Tool, intent *models.ParsedIntent) []models.Tool {
	if intent == nil || intent.PrimaryCategory == "" {
		return catalog
	}
	var out []models.Tool
	for _, tool := range catalog {
		if tool.Category == intent.PrimaryCategory {
			out = append(out, tool)
		}
	}
	if len(out) == 0 {
		return catalog
	}
	return out
}

func filterByPricing(tools []models.Tool, filter string) []models.Tool {
	if filter == "" {
		return tools
	}
	var out []models.Tool
	for _, tool := range tools {
		switch filter {
		case models.PricingFree:
			if tool.Pricing.Free || tool.Pricing.Freemium {
				out = append(out, tool)
			}
		case models.PricingPaid:
			if tool.Pricing.PaidOnly || tool.Pricing.Freemium {
				out = append(out, tool)
			}
		default:
			out = append(out, tool)
		}
	}
	return out
}

func categoryOf(intent *models.ParsedIntent) string {
	if intent == nil {
		return ""
	}
	return string(intent.PrimaryCategory)
}
