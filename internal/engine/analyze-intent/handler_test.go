// internal/engine/analyze-intent/handler_test.go
package analyzeintent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"toolrouter/internal/common/logger"
	cacheintent "toolrouter/internal/engine/cache-intent"
	parseuserintent "toolrouter/internal/engine/parse-user-intent"
	"toolrouter/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.reply}},
		},
	}, nil
}

func llmReply(confidence float64) string {
	payload := map[string]interface{}{
		"primaryCategory":     "text",
		"secondaryCategories": []string{},
		"confidence":          confidence,
		"userGoal":            "write an article",
		"constraints": map[string]string{
			"pricing": "", "speed": "", "expertise": "", "language": "en",
		},
		"keywords":       []string{"article"},
		"reasoning":      "explicit writing request",
		"complexity":     "simple",
		"estimatedSteps": 1,
		"workflowHints":  []string{},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func setup(t *testing.T, completer parseuserintent.ChatCompleter) (*Handler, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := logger.NewTestLogger(t)

	cache := cacheintent.NewHandler(cacheintent.DefaultConfig(), client, log)
	parser := parseuserintent.NewHandler(parseuserintent.DefaultConfig(), completer, log)
	return NewHandler(cache, parser, log), mr
}

const longTextQuery = "please write a long detailed article about marine biology"

func TestHandler_Execute_CachesSuccessfulParse(t *testing.T) {
	stub := &stubCompleter{reply: llmReply(0.9)}
	handler, _ := setup(t, stub)
	ctx := context.Background()

	result, source, err := handler.Execute(ctx, longTextQuery)
	require.NoError(t, err)
	require.True(t, result.OK())
	assert.Equal(t, parseuserintent.SourceLLM, source)
	assert.Equal(t, 1, stub.calls)

	// Second identical query hits the cache.
	result, source, err = handler.Execute(ctx, longTextQuery)
	require.NoError(t, err)
	require.True(t, result.OK())
	assert.Equal(t, SourceCache, source)
	assert.Equal(t, 1, stub.calls, "cached query must not reach the reasoning service again")
}

func TestHandler_Execute_NormalizedQueriesShareEntry(t *testing.T) {
	stub := &stubCompleter{reply: llmReply(0.9)}
	handler, _ := setup(t, stub)
	ctx := context.Background()

	_, _, err := handler.Execute(ctx, longTextQuery)
	require.NoError(t, err)

	_, source, err := handler.Execute(ctx, "  PLEASE write a long   detailed article about marine biology ")
	require.NoError(t, err)
	assert.Equal(t, SourceCache, source)
	assert.Equal(t, 1, stub.calls)
}

func TestHandler_Execute_NeverCachesFallback(t *testing.T) {
	stub := &stubCompleter{err: errors.New("service down")}
	handler, mr := setup(t, stub)
	ctx := context.Background()

	result, source, err := handler.Execute(ctx, longTextQuery)
	require.NoError(t, err)
	require.True(t, result.OK(), "keyword fallback should still produce an intent")
	assert.Equal(t, parseuserintent.SourceFallback, source)

	assert.Empty(t, mr.Keys(), "fallback intents must not be cached")

	// Recovery: service comes back, next query parses fresh.
	stub.err = nil
	stub.reply = llmReply(0.9)
	_, source, err = handler.Execute(ctx, longTextQuery)
	require.NoError(t, err)
	assert.Equal(t, parseuserintent.SourceLLM, source)
}

func TestHandler_Execute_NeverCachesErrors(t *testing.T) {
	stub := &stubCompleter{reply: llmReply(0.2)}
	handler, mr := setup(t, stub)

	result, _, err := handler.Execute(context.Background(), longTextQuery)
	require.NoError(t, err)
	require.False(t, result.OK())
	assert.Equal(t, models.IntentErrLowConfidence, result.Err.Code)
	assert.Empty(t, mr.Keys())
}

func TestHandler_Execute_NeverCachesFastPath(t *testing.T) {
	stub := &stubCompleter{reply: llmReply(0.9)}
	handler, mr := setup(t, stub)

	_, source, err := handler.Execute(context.Background(), "logo tasarla")
	require.NoError(t, err)
	assert.Equal(t, parseuserintent.SourceFastPath, source)
	assert.Empty(t, mr.Keys())
}

func TestHandler_Execute_CacheDownStillWorks(t *testing.T) {
	stub := &stubCompleter{reply: llmReply(0.9)}
	handler, mr := setup(t, stub)
	mr.Close()

	result, source, err := handler.Execute(context.Background(), longTextQuery)
	require.NoError(t, err)
	require.True(t, result.OK())
	assert.Equal(t, parseuserintent.SourceLLM, source)
}

func TestHandler_Execute_NilCache(t *testing.T) {
	stub := &stubCompleter{reply: llmReply(0.9)}
	log := logger.NewTestLogger(t)
	parser := parseuserintent.NewHandler(parseuserintent.DefaultConfig(), stub, log)
	handler := NewHandler(nil, parser, log)

	result, _, err := handler.Execute(context.Background(), longTextQuery)
	require.NoError(t, err)
	assert.True(t, result.OK())
}
