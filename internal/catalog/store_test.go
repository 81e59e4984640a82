package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"toolrouter/internal/common/logger"
	"toolrouter/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStore(client, "tools", logger.NewTestLogger(t))
	return store, mr
}

func testTools() []models.Tool {
	return []models.Tool{
		{
			Name:        "Tool A",
			Category:    models.CategoryVisual,
			Description: "first test tool",
			URL:         "https://a.example.com",
			Pricing:     models.Pricing{Free: true, Currency: "USD"},
			BestFor:     []string{"testing"},
			Strength:    9.0,
		},
		{
			Name:        "Tool B",
			Category:    models.CategoryText,
			Description: "second test tool",
			URL:         "https://b.example.com",
			Pricing:     models.Pricing{PaidOnly: true, StartingPrice: 10, Currency: "USD"},
			BestFor:     []string{"writing"},
			Strength:    9.5,
		},
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestStore_GetTools_AutoInitializes(t *testing.T) {
	store, mr := setupStore(t)

	tools := store.GetTools(context.Background())

	assert.Equal(t, len(BaseTools), len(tools))
	assert.True(t, mr.Exists("tools"))
}

func TestStore_GetTools_ReturnsStored(t *testing.T) {
	store, mr := setupStore(t)

	payload, err := json.Marshal(testTools())
	require.NoError(t, err)
	require.NoError(t, mr.Set("tools", string(payload)))

	tools := store.GetTools(context.Background())

	assert.Len(t, tools, 2)
	assert.Equal(t, "Tool A", tools[0].Name)
}

func TestStore_GetTools_FallsBackWhenRedisDown(t *testing.T) {
	store, mr := setupStore(t)
	mr.Close()

	tools := store.GetTools(context.Background())

	assert.Equal(t, len(BaseTools), len(tools))
}

func TestStore_GetTools_FallsBackOnCorruptPayload(t *testing.T) {
	store, mr := setupStore(t)
	require.NoError(t, mr.Set("tools", "{not json"))

	tools := store.GetTools(context.Background())

	assert.Equal(t, len(BaseTools), len(tools))
}

func TestStore_UpdateTools_ReplacesWholesale(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	store.Initialize(ctx)

	err := store.UpdateTools(ctx, testTools())
	assert.NoError(t, err)

	tools := store.GetTools(ctx)
	assert.Len(t, tools, 2)
}

func TestStore_UpdateTools_RejectsInvalid(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	t.Run("missing name", func(t *testing.T) {
		err := store.UpdateTools(ctx, []models.Tool{{Category: models.CategoryText}})
		assert.Error(t, err)
	})

	t.Run("invalid category", func(t *testing.T) {
		err := store.UpdateTools(ctx, []models.Tool{{Name: "X", Category: "bogus"}})
		assert.Error(t, err)
	})
}

func TestStore_GetTools_FallsBackOnReadError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, "tools", logger.NewTestLogger(t))

	mock.ExpectGet("tools").SetErr(errors.New("connection reset by peer"))

	tools := store.GetTools(context.Background())

	assert.Equal(t, len(BaseTools), len(tools))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateTools_SurfacesWriteError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, "tools", logger.NewTestLogger(t))

	mock.Regexp().ExpectSet("tools", `.*`, 0).SetErr(errors.New("READONLY You can't write against a read only replica"))

	err := store.UpdateTools(context.Background(), testTools())

	assert.ErrorContains(t, err, "failed to update catalog")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetToolsByCategory(t *testing.T) {
	store, mr := setupStore(t)
	payload, _ := json.Marshal(testTools())
	require.NoError(t, mr.Set("tools", string(payload)))

	visual := store.GetToolsByCategory(context.Background(), models.CategoryVisual)

	assert.Len(t, visual, 1)
	assert.Equal(t, "Tool A", visual[0].Name)
}

func TestStore_GetTopTools(t *testing.T) {
	store, mr := setupStore(t)
	payload, _ := json.Marshal(testTools())
	require.NoError(t, mr.Set("tools", string(payload)))

	top := store.GetTopTools(context.Background(), 1)

	assert.Len(t, top, 1)
	assert.Equal(t, "Tool B", top[0].Name)
}

func TestStore_GetTopTools_LimitLargerThanCatalog(t *testing.T) {
	store, mr := setupStore(t)
	payload, _ := json.Marshal(testTools())
	require.NoError(t, mr.Set("tools", string(payload)))

	top := store.GetTopTools(context.Background(), 100)

	assert.Len(t, top, 2)
}

func TestStore_FindToolByName(t *testing.T) {
	store, mr := setupStore(t)
	payload, _ := json.Marshal(testTools())
	require.NoError(t, mr.Set("tools", string(payload)))

	found := store.FindToolByName(context.Background(), "Tool B")
	assert.NotNil(t, found)
	assert.Equal(t, models.CategoryText, found.Category)

	missing := store.FindToolByName(context.Background(), "nope")
	assert.Nil(t, missing)
}

// ==========================
// Base Data Sanity
// ==========================

func TestBaseTools_Valid(t *testing.T) {
	seen := map[string]bool{}
	for _, tool := range BaseTools {
		assert.NotEmpty(t, tool.Name)
		assert.True(t, models.IsValidCategory(tool.Category), "category %q", tool.Category)
		assert.False(t, seen[tool.Name], "duplicate tool %q", tool.Name)
		seen[tool.Name] = true
		assert.Greater(t, tool.Strength, 0.0)
		assert.LessOrEqual(t, tool.Strength, 10.0)
	}
}
