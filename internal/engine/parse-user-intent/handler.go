// Package parseuserintent turns a free-text query into a structured intent.
// It tries a keyword fast path first, then the reasoning service, then
// degrades to a keyword-derived fallback intent when the service fails.
package parseuserintent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"toolrouter/internal/common/logger"
	"toolrouter/internal/common/metrics"
	detectcategory "toolrouter/internal/engine/detect-category"
	"toolrouter/internal/models"

	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the OpenAI client the parser needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Handler parses user queries into intents.
type Handler struct {
	config *Config
	client ChatCompleter
	logger logger.Logger
}

// NewHandler creates a parser handler. The client may be nil, in which case
// every query takes the fallback path.
func NewHandler(config *Config, client ChatCompleter, log logger.Logger) *Handler {
	if config == nil {
		config = DefaultConfig()
	}
	return &Handler{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "intent-parser"}),
	}
}

// Execute parses the query. The returned error is reserved for programming
// mistakes (empty query); every runtime failure is folded into the output's
// IntentResult.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil || strings.TrimSpace(input.Query) == "" {
		return nil, fmt.Errorf("query is required")
	}
	query := input.Query
	qt := detectQueryType(query)

	// Fast path: short query with an obvious keyword category skips the
	// reasoning service entirely.
	if category, ok := detectcategory.Detect(query); ok {
		if len(strings.Fields(query)) < h.config.FastPathMaxWords {
			metrics.IntentParses.WithLabelValues(SourceFastPath).Inc()
			h.logger.Debug("Fast path intent", map[string]interface{}{
				"query":    query,
				"category": string(category),
			})
			return &Output{
				Result: models.IntentResult{Intent: h.fallbackIntent(query, category, qt)},
				Source: SourceFastPath,
			}, nil
		}
	}

	intent, err := h.callReasoningService(ctx, query)
	if err != nil {
		h.logger.Warn("Reasoning service failed, trying keyword fallback", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return h.degrade(query, qt, err), nil
	}

	h.normalize(intent, qt)

	if intent.Confidence < h.config.MinConfidence {
		metrics.IntentParses.WithLabelValues(SourceLLM).Inc()
		return &Output{
			Result: models.IntentResult{Err: &models.IntentError{
				Code:    models.IntentErrLowConfidence,
				Message: "Could you give a bit more detail? I could not quite work out what you want to do.",
				Suggestions: []string{
					`Example: "I want to design a logo"`,
					`Example: "I need an AI for writing blog posts"`,
					`Example: "I want to create a comic"`,
				},
			}},
			Source: SourceLLM,
		}, nil
	}

	metrics.IntentParses.WithLabelValues(SourceLLM).Inc()
	h.logger.Info("Intent parsed", map[string]interface{}{
		"query":      query,
		"category":   string(intent.PrimaryCategory),
		"complexity": intent.Complexity,
		"confidence": intent.Confidence,
	})
	return &Output{
		Result: models.IntentResult{Intent: intent},
		Source: SourceLLM,
	}, nil
}

// callReasoningService asks the model for a structured intent. The call is
// bounded by the configured timeout and cancelled with the parent context.
func (h *Handler) callReasoningService(ctx context.Context, query string) (*models.ParsedIntent, error) {
	if h.client == nil {
		return nil, fmt.Errorf("reasoning service not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := h.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: h.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "intent_analysis",
				Schema: rawSchema(intentSchemaJSON),
				Strict: true,
			},
		},
		Temperature: h.config.Temperature,
		MaxTokens:   h.config.MaxTokens,
	})
	metrics.ExternalCallDuration.WithLabelValues("openai_chat").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("empty reply from reasoning service")
	}
	content := resp.Choices[0].Message.Content

	if err := validateIntentPayload(content); err != nil {
		return nil, err
	}

	var intent models.ParsedIntent
	if err := json.Unmarshal([]byte(content), &intent); err != nil {
		return nil, fmt.Errorf("failed to decode intent: %w", err)
	}
	return &intent, nil
}

// normalize fills defaults and applies the keyword override when the model
// missed an obviously multi-step request.
func (h *Handler) normalize(intent *models.ParsedIntent, qt queryType) {
	if intent.SecondaryCategories == nil {
		intent.SecondaryCategories = []models.Category{}
	}
	if intent.WorkflowHints == nil {
		intent.WorkflowHints = []string{}
	}
	if intent.Complexity == "" {
		intent.Complexity = models.ComplexitySimple
	}

	if qt.isMultiStep && !qt.isExplicitSimple && intent.Complexity == models.ComplexitySimple {
		h.logger.Debug("Overriding to multi-step based on keywords", nil)
		intent.Complexity = models.ComplexityMultiStep
		if intent.EstimatedSteps == 0 {
			intent.EstimatedSteps = h.config.DefaultMultiSteps
		}
		intent.WorkflowHints = append(intent.WorkflowHints, qt.hints...)
	}
}

// degrade handles reasoning service failures: keyword category if possible,
// otherwise a terminal API error.
func (h *Handler) degrade(query string, qt queryType, cause error) *Output {
	if category, ok := detectcategory.Detect(query); ok {
		metrics.IntentParses.WithLabelValues(SourceFallback).Inc()
		h.logger.Info("Fallback intent from keywords", map[string]interface{}{
			"query":    query,
			"category": string(category),
		})
		return &Output{
			Result: models.IntentResult{Intent: h.fallbackIntent(query, category, qt)},
			Source: SourceFallback,
		}
	}

	metrics.IntentParses.WithLabelValues(SourceFallback).Inc()
	return &Output{
		Result: models.IntentResult{Err: &models.IntentError{
			Code:        models.IntentErrAPIError,
			Message:     "The reasoning service is unavailable and the request could not be categorized.",
			Suggestions: []string{"Try again with more specific wording, e.g. naming what you want to create."},
		}},
		Source: SourceFallback,
	}
}

// fallbackIntent builds the low-commitment intent used by the fast path and
// the degraded path.
func (h *Handler) fallbackIntent(query string, category models.Category, qt queryType) *models.ParsedIntent {
	complexity := models.ComplexitySimple
	steps := 1
	if qt.isMultiStep && !qt.isExplicitSimple {
		complexity = models.ComplexityMultiStep
	}
	if qt.isMultiStep {
		steps = h.config.DefaultMultiSteps
	}
	hints := qt.hints
	if hints == nil {
		hints = []string{}
	}
	return &models.ParsedIntent{
		PrimaryCategory:     category,
		SecondaryCategories: []models.Category{},
		Confidence:          h.config.FallbackConfidence,
		UserGoal:            query,
		Constraints: models.Constraints{
			Pricing:   models.PricingFree,
			Speed:     models.SpeedFast,
			Expertise: models.ExpertiseBeginner,
			Language:  "en",
		},
		Keywords:       strings.Fields(query),
		Reasoning:      "Derived from keyword fallback.",
		Complexity:     complexity,
		EstimatedSteps: steps,
		WorkflowHints:  hints,
	}
}
