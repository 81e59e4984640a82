// internal/engine/build-response/handler_test.go
package buildresponse

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolrouter/internal/catalog"
	"toolrouter/internal/common/logger"
	analyzeintent "toolrouter/internal/engine/analyze-intent"
	cacheintent "toolrouter/internal/engine/cache-intent"
	generateworkflow "toolrouter/internal/engine/generate-workflow"
	parseuserintent "toolrouter/internal/engine/parse-user-intent"
	ranktools "toolrouter/internal/engine/rank-tools"
	selecttemplate "toolrouter/internal/engine/select-template"
	"toolrouter/internal/models"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.reply}},
		},
	}, nil
}

// llmReply builds a schema-complete intent payload with overrides applied.
func llmReply(t *testing.T, overrides map[string]interface{}) string {
	t.Helper()
	payload := map[string]interface{}{
		"primaryCategory":     "visual",
		"secondaryCategories": []string{},
		"confidence":          0.92,
		"userGoal":            "design a logo",
		"constraints": map[string]interface{}{
			"pricing":   "",
			"speed":     "",
			"expertise": "",
			"language":  "en",
		},
		"keywords":       []string{"logo"},
		"reasoning":      "The user wants a logo designed.",
		"complexity":     "simple",
		"estimatedSteps": 1,
		"workflowHints":  []string{},
	}
	for k, v := range overrides {
		payload[k] = v
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(raw)
}

func newPipeline(t *testing.T, completer parseuserintent.ChatCompleter) *Handler {
	t.Helper()
	log := logger.NewTestLogger(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := catalog.NewStore(client, "tools", log)
	cache := cacheintent.NewHandler(nil, client, log)
	parser := parseuserintent.NewHandler(nil, completer, log)
	analyzer := analyzeintent.NewHandler(cache, parser, log)
	ranker := ranktools.NewHandler(nil, store, log)
	matcher := selecttemplate.NewHandler(selecttemplate.DefaultConfig(), nil, log)
	generator := generateworkflow.NewHandler(store, log)

	return NewHandler(DefaultConfig(), analyzer, ranker, matcher, generator, log)
}

func TestExecute_SimpleRecommendation(t *testing.T) {
	h := newPipeline(t, &stubCompleter{reply: llmReply(t, nil)})

	resp := h.Execute(context.Background(), Input{
		Query: "recommend a good platform for my company logo design work",
	})

	require.Equal(t, models.ResponseTypeSimple, resp.Type)
	require.NotNil(t, resp.Simple)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, models.CategoryVisual, resp.Simple.Category)
	assert.NotEmpty(t, resp.Simple.Main.Tool.Name)
	assert.NotEmpty(t, resp.Simple.Main.Reasoning)
	assert.LessOrEqual(t, len(resp.Simple.Alternatives), 3)

	assert.Equal(t, models.CategoryVisual, resp.Simple.Main.Tool.Category)
	for _, alt := range resp.Simple.Alternatives {
		assert.Equal(t, models.CategoryVisual, alt.Tool.Category)
	}
}

func TestExecute_PricingFilterHonored(t *testing.T) {
	h := newPipeline(t, &stubCompleter{reply: llmReply(t, nil)})

	resp := h.Execute(context.Background(), Input{
		Query:         "recommend a good platform for my company logo design work",
		PricingFilter: models.PricingFree,
	})

	require.Equal(t, models.ResponseTypeSimple, resp.Type)
	require.NotNil(t, resp.Simple)

	check := func(rec models.ToolRecommendation) {
		assert.True(t, rec.Tool.Pricing.Free || rec.Tool.Pricing.Freemium,
			"%s is neither free nor freemium", rec.Tool.Name)
	}
	check(resp.Simple.Main)
	for _, alt := range resp.Simple.Alternatives {
		check(alt)
	}
}

func TestExecute_WorkflowForMultiStepIntent(t *testing.T) {
	h := newPipeline(t, &stubCompleter{reply: llmReply(t, map[string]interface{}{
		"complexity":     "multi-step",
		"estimatedSteps": 5,
		"workflowHints":  []string{"comic"},
		"userGoal":       "create a comic book",
		"keywords":       []string{"comic", "story"},
	})})

	resp := h.Execute(context.Background(), Input{Query: "I want to make a comic book"})

	require.Equal(t, models.ResponseTypeWorkflow, resp.Type)
	require.NotNil(t, resp.Workflow)
	assert.Equal(t, "comic-creation", resp.Workflow.TemplateID)
	assert.Equal(t, 5, resp.Workflow.TotalSteps)
	assert.Equal(t, "I want to make a comic book", resp.Workflow.UserQuery)

	for _, step := range resp.Workflow.Steps {
		assert.NotEmpty(t, step.Primary.Tool.Name, "step %d has no primary", step.Order)
		assert.NotEmpty(t, step.Alternative.Tool.Name, "step %d has no alternative", step.Order)
	}
}

func TestExecute_MultiStepWithoutTemplateDegradesToSimple(t *testing.T) {
	h := newPipeline(t, &stubCompleter{reply: llmReply(t, map[string]interface{}{
		"primaryCategory": "text",
		"complexity":      "multi-step",
		"estimatedSteps":  4,
		"keywords":        []string{"paperwork"},
		"userGoal":        "automate paperwork",
	})})

	resp := h.Execute(context.Background(), Input{
		Query: "please help me automate my paperwork end to end",
	})

	require.Equal(t, models.ResponseTypeSimple, resp.Type)
	require.NotNil(t, resp.Simple)
	assert.Nil(t, resp.Workflow)
}

func TestExecute_LowConfidenceError(t *testing.T) {
	h := newPipeline(t, &stubCompleter{reply: llmReply(t, map[string]interface{}{
		"confidence": 0.3,
	})})

	resp := h.Execute(context.Background(), Input{
		Query: "please recommend a good platform for doing that one thing",
	})

	require.Equal(t, models.ResponseTypeError, resp.Type)
	assert.Equal(t, models.IntentErrLowConfidence, resp.ErrorCode)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.Suggestions)
	assert.Nil(t, resp.Simple)
	assert.Nil(t, resp.Workflow)
}

func TestExecute_APIFailureWithKeywordFallbackStillRecommends(t *testing.T) {
	h := newPipeline(t, &stubCompleter{err: errors.New("connection refused")})

	// "design" carries the visual category, so the keyword fallback still
	// produces an intent and the pipeline answers normally.
	resp := h.Execute(context.Background(), Input{
		Query: "please suggest a service to design a promotional poster quickly",
	})

	require.Equal(t, models.ResponseTypeSimple, resp.Type)
	require.NotNil(t, resp.Simple)
	assert.Equal(t, models.CategoryVisual, resp.Simple.Category)
}

func TestExecute_APIFailureWithoutCategoryIsError(t *testing.T) {
	h := newPipeline(t, &stubCompleter{err: errors.New("connection refused")})

	resp := h.Execute(context.Background(), Input{
		Query: "qwerty asdf zxcv some nonsense without recognizable words",
	})

	require.Equal(t, models.ResponseTypeError, resp.Type)
	assert.Equal(t, models.IntentErrAPIError, resp.ErrorCode)
}

func TestExecute_EmptyQuery(t *testing.T) {
	h := newPipeline(t, &stubCompleter{reply: llmReply(t, nil)})

	resp := h.Execute(context.Background(), Input{Query: "   "})

	require.Equal(t, models.ResponseTypeError, resp.Type)
	assert.Equal(t, "INVALID_REQUEST", resp.ErrorCode)
}

func TestExplainTool(t *testing.T) {
	intent := &models.ParsedIntent{
		Keywords:    []string{"logo"},
		Constraints: models.Constraints{Pricing: models.PricingFree},
	}

	t.Run("full reason chain capped at three", func(t *testing.T) {
		tool := models.Tool{
			Name:     "PixelSmith",
			Category: models.CategoryVisual,
			Pricing:  models.Pricing{Free: true},
			BestFor:  []string{"logo design"},
			Strength: 9.8,
			Features: []string{"style reference"},
		}
		got := explainTool(tool, intent)
		assert.Contains(t, got, "strong at logo design")
		assert.Contains(t, got, "free to use")
		assert.Contains(t, got, "best in class")
		assert.NotContains(t, got, "style reference")
	})

	t.Run("generic fallback", func(t *testing.T) {
		tool := models.Tool{Name: "Plain", Category: models.CategoryText, Strength: 8.0}
		got := explainTool(tool, &models.ParsedIntent{})
		assert.Equal(t, "a strong option in the text category.", got)
	})
}
