// internal/engine/cache-intent/handler_test.go
package cacheintent

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"toolrouter/internal/common/logger"
	"toolrouter/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T) (*Handler, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	handler := NewHandler(DefaultConfig(), client, logger.NewTestLogger(t))
	return handler, mr
}

func testIntent() *models.ParsedIntent {
	return &models.ParsedIntent{
		PrimaryCategory: models.CategoryVisual,
		Confidence:      0.9,
		UserGoal:        "design a logo",
		Keywords:        []string{"logo"},
		Complexity:      models.ComplexitySimple,
	}
}

func TestHandler_Key_Normalization(t *testing.T) {
	handler, _ := setupHandler(t)

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"lowercase", "Design A Logo", "intent:design a logo"},
		{"trim", "  logo  ", "intent:logo"},
		{"collapse whitespace", "design \t a\n\nlogo", "intent:design a logo"},
		{"already normal", "logo", "intent:logo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, handler.Key(tt.query))
		})
	}
}

func TestHandler_SetThenGet(t *testing.T) {
	handler, _ := setupHandler(t)
	ctx := context.Background()

	handler.Set(ctx, "Design A Logo", testIntent())

	// Equivalent queries share the cache entry.
	got := handler.Get(ctx, "  design a  logo ")
	require.NotNil(t, got)
	assert.Equal(t, models.CategoryVisual, got.PrimaryCategory)
	assert.Equal(t, 0.9, got.Confidence)
}

func TestHandler_Get_Miss(t *testing.T) {
	handler, _ := setupHandler(t)

	got := handler.Get(context.Background(), "never seen")
	assert.Nil(t, got)
}

func TestHandler_Get_CorruptPayload(t *testing.T) {
	handler, mr := setupHandler(t)
	require.NoError(t, mr.Set("intent:bad entry", "{broken"))

	got := handler.Get(context.Background(), "bad entry")
	assert.Nil(t, got)
}

func TestHandler_RedisDownDegradesToMiss(t *testing.T) {
	handler, mr := setupHandler(t)
	ctx := context.Background()
	mr.Close()

	// Neither call should panic or error out.
	handler.Set(ctx, "query", testIntent())
	got := handler.Get(ctx, "query")
	assert.Nil(t, got)
}

func TestHandler_TTL(t *testing.T) {
	handler, mr := setupHandler(t)
	ctx := context.Background()

	handler.Set(ctx, "expiring query", testIntent())

	key := handler.Key("expiring query")
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 24*time.Hour, mr.TTL(key))

	mr.FastForward(25 * time.Hour)
	assert.Nil(t, handler.Get(ctx, "expiring query"))
}

func TestHandler_Set_NilIntent(t *testing.T) {
	handler, mr := setupHandler(t)

	handler.Set(context.Background(), "query", nil)
	assert.False(t, mr.Exists("intent:query"))
}

func TestHandler_StoredPayloadIsJSON(t *testing.T) {
	handler, mr := setupHandler(t)

	handler.Set(context.Background(), "logo", testIntent())

	raw, err := mr.Get("intent:logo")
	require.NoError(t, err)

	var decoded models.ParsedIntent
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "design a logo", decoded.UserGoal)
}
