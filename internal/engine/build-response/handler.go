// internal/engine/build-response/handler.go
// ============================================
// RECOMMENDATION RESPONSE BUILDER
// The core-exposed entry point: resolves the intent, decides between a
// simple recommendation and a workflow, and assembles the final response.
// Nothing here is fatal; the worst case is a generic recommendation.
// ============================================
package buildresponse

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"toolrouter/internal/common/errors"
	"toolrouter/internal/common/logger"
	"toolrouter/internal/common/metrics"
	analyzeintent "toolrouter/internal/engine/analyze-intent"
	generateworkflow "toolrouter/internal/engine/generate-workflow"
	ranktools "toolrouter/internal/engine/rank-tools"
	selecttemplate "toolrouter/internal/engine/select-template"
	"toolrouter/internal/models"
)

// Input is one recommendation request.
type Input struct {
	Query         string
	PricingFilter string
}

// Handler assembles recommendation responses from the pipeline stages.
type Handler struct {
	config    Config
	analyzer  *analyzeintent.Handler
	ranker    *ranktools.Handler
	matcher   *selecttemplate.Handler
	generator *generateworkflow.Handler
	logger    logger.Logger
}

// NewHandler wires the response builder.
func NewHandler(
	config Config,
	analyzer *analyzeintent.Handler,
	ranker *ranktools.Handler,
	matcher *selecttemplate.Handler,
	generator *generateworkflow.Handler,
	log logger.Logger,
) *Handler {
	if config.MaxAlternatives <= 0 {
		config.MaxAlternatives = DefaultConfig().MaxAlternatives
	}
	return &Handler{
		config:    config,
		analyzer:  analyzer,
		ranker:    ranker,
		matcher:   matcher,
		generator: generator,
		logger:    log.WithFields(map[string]interface{}{"component": "build-response"}),
	}
}

// Execute runs the full pipeline for one query. Multi-step intents get a
// workflow when a template matches; everything else, including workflow
// attempts that find no template, gets a simple recommendation.
func (h *Handler) Execute(ctx context.Context, input Input) *models.RecommendationResponse {
	requestID := uuid.NewString()

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return h.errorResponse(requestID, &models.IntentError{
			Code:    string(errors.ErrCodeInvalidRequest),
			Message: "Query must not be empty.",
		})
	}

	result, source, err := h.analyzer.Execute(ctx, query)
	if err != nil {
		h.logger.Error("Intent analysis failed", map[string]interface{}{
			"requestId": requestID,
			"error":     err.Error(),
		})
		return h.errorResponse(requestID, &models.IntentError{
			Code:    models.IntentErrAPIError,
			Message: "Could not analyze the request. Please try again.",
		})
	}
	if result.Err != nil {
		return h.errorResponse(requestID, result.Err)
	}

	intent := result.Intent
	h.logger.Info("Intent resolved", map[string]interface{}{
		"requestId":  requestID,
		"source":     source,
		"category":   string(intent.PrimaryCategory),
		"complexity": intent.Complexity,
	})

	if intent.IsMultiStep() {
		if resp := h.tryWorkflow(ctx, requestID, query, intent); resp != nil {
			return resp
		}
	}

	return h.simpleResponse(ctx, requestID, intent, input.PricingFilter)
}

// tryWorkflow returns nil when no template fits, letting the caller degrade
// to a simple recommendation.
func (h *Handler) tryWorkflow(
	ctx context.Context,
	requestID, query string,
	intent *models.ParsedIntent,
) *models.RecommendationResponse {
	match := h.matcher.Execute(selecttemplate.Input{Query: query, Hints: intent.WorkflowHints})
	if match.Template == nil {
		h.logger.Debug("No template for multi-step intent, degrading to simple", map[string]interface{}{
			"requestId": requestID,
		})
		return nil
	}

	workflow, err := h.generator.Execute(ctx, generateworkflow.Input{
		Template: match.Template,
		Intent:   intent,
		Query:    query,
	})
	if err != nil {
		h.logger.Warn("Workflow generation failed, degrading to simple", map[string]interface{}{
			"requestId": requestID,
			"error":     err.Error(),
		})
		return nil
	}

	metrics.RecommendationsServed.WithLabelValues(models.ResponseTypeWorkflow).Inc()
	return &models.RecommendationResponse{
		RequestID: requestID,
		Type:      models.ResponseTypeWorkflow,
		Workflow:  workflow,
	}
}

func (h *Handler) simpleResponse(
	ctx context.Context,
	requestID string,
	intent *models.ParsedIntent,
	pricingFilter string,
) *models.RecommendationResponse {
	output, err := h.ranker.Execute(ctx, &ranktools.Input{
		Intent:        intent,
		PricingFilter: pricingFilter,
	})
	if err != nil || len(output.Ranked) == 0 {
		// Valid terminal state: nothing survived filtering. Serve the
		// generic assistant rather than an error.
		metrics.RecommendationsServed.WithLabelValues(models.ResponseTypeSimple).Inc()
		return &models.RecommendationResponse{
			RequestID: requestID,
			Type:      models.ResponseTypeSimple,
			Simple:    genericRecommendation(intent.PrimaryCategory),
		}
	}

	main := output.Ranked[0]
	simple := &models.SimpleRecommendation{
		Category: intent.PrimaryCategory,
		Main: models.ToolRecommendation{
			Tool:      main.Tool,
			Score:     main.Score,
			Reasoning: explainTool(main.Tool, intent),
		},
	}

	for _, alt := range output.Ranked[1:] {
		if len(simple.Alternatives) == h.config.MaxAlternatives {
			break
		}
		simple.Alternatives = append(simple.Alternatives, models.ToolRecommendation{
			Tool:      alt.Tool,
			Score:     alt.Score,
			Reasoning: explainTool(alt.Tool, intent),
		})
	}

	metrics.RecommendationsServed.WithLabelValues(models.ResponseTypeSimple).Inc()
	return &models.RecommendationResponse{
		RequestID: requestID,
		Type:      models.ResponseTypeSimple,
		Simple:    simple,
	}
}

func (h *Handler) errorResponse(requestID string, intentErr *models.IntentError) *models.RecommendationResponse {
	metrics.RecommendationErrors.WithLabelValues(intentErr.Code).Inc()
	metrics.RecommendationsServed.WithLabelValues(models.ResponseTypeError).Inc()
	h.logger.Warn("Request ended in error response", map[string]interface{}{
		"requestId": requestID,
		"code":      intentErr.Code,
	})
	return &models.RecommendationResponse{
		RequestID:   requestID,
		Type:        models.ResponseTypeError,
		ErrorCode:   intentErr.Code,
		Message:     intentErr.Message,
		Suggestions: intentErr.Suggestions,
	}
}

// explainTool assembles the justification for a simple recommendation: the
// matched need, pricing fit, quality tier and headline feature, capped at
// three reasons.
func explainTool(tool models.Tool, intent *models.ParsedIntent) string {
	var reasons []string

	if match := matchedBestFor(tool, intent.Keywords); match != "" {
		reasons = append(reasons, fmt.Sprintf("strong at %s", match))
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
		reasons = append(reasons, fmt.Sprintf("a strong option in the %s category", tool.Category))
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return strings.Join(reasons, ", ") + "."
}

func matchedBestFor(tool models.Tool, keywords []string) string {
	for _, entry := range tool.BestFor {
		lowerEntry := strings.ToLower(entry)
		for _, keyword := range keywords {
			kw := strings.ToLower(keyword)
			if strings.Contains(lowerEntry, kw) || strings.Contains(kw, lowerEntry) {
				return entry
			}
		}
	}
	return ""
}

// genericRecommendation is the last-resort answer when filtering leaves no
// catalog tool.
func genericRecommendation(category models.Category) *models.SimpleRecommendation {
	main := models.Tool{
		Name:        "ChatGPT (GPT-5)",
		Category:    category,
		Description: "General-purpose AI assistant",
		URL:         "https://chat.openai.com",
		Pricing:     models.Pricing{Free: true, Freemium: true, StartingPrice: 20, Currency: "USD"},
		BestFor:     []string{"general purpose", "content creation", "writing"},
		Strength:    9.5,
	}
	alt := main
	alt.Name = "Claude AI (Claude 4)"
	alt.URL = "https://claude.ai"

	return &models.SimpleRecommendation{
		Category: category,
		Main: models.ToolRecommendation{
			Tool:      main,
			Score:     8,
			Reasoning: "No catalog tool matched the request, a general-purpose assistant is suggested.",
		},
		Alternatives: []models.ToolRecommendation{
			{
				Tool:      alt,
				Score:     8,
				Reasoning: "General-purpose alternative.",
			},
		},
	}
}
