// internal/server/server_test.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolrouter/internal/catalog"
	"toolrouter/internal/common/config"
	"toolrouter/internal/common/logger"
	analyzeintent "toolrouter/internal/engine/analyze-intent"
	buildresponse "toolrouter/internal/engine/build-response"
	cacheintent "toolrouter/internal/engine/cache-intent"
	generateworkflow "toolrouter/internal/engine/generate-workflow"
	parseuserintent "toolrouter/internal/engine/parse-user-intent"
	ranktools "toolrouter/internal/engine/rank-tools"
	selecttemplate "toolrouter/internal/engine/select-template"
	"toolrouter/internal/models"
)

type stubCompleter struct {
	reply string
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.reply}},
		},
	}, nil
}

func intentReply(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"primaryCategory":     "visual",
		"secondaryCategories": []string{},
		"confidence":          0.9,
		"userGoal":            "design a logo",
		"constraints": map[string]interface{}{
			"pricing": "", "speed": "", "expertise": "", "language": "en",
		},
		"keywords":       []string{"logo"},
		"reasoning":      "Logo design request.",
		"complexity":     "simple",
		"estimatedSteps": 1,
		"workflowHints":  []string{},
	})
	require.NoError(t, err)
	return string(raw)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := logger.NewTestLogger(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := catalog.NewStore(client, "tools", log)
	parser := parseuserintent.NewHandler(nil, &stubCompleter{reply: intentReply(t)}, log)
	analyzer := analyzeintent.NewHandler(cacheintent.NewHandler(nil, client, log), parser, log)
	pipeline := buildresponse.NewHandler(
		buildresponse.DefaultConfig(),
		analyzer,
		ranktools.NewHandler(nil, store, log),
		selecttemplate.NewHandler(selecttemplate.DefaultConfig(), nil, log),
		generateworkflow.NewHandler(store, log),
		log,
	)

	return New(config.ServerConfig{Address: ":0"}, pipeline, store, nil, log)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRecommend_Simple(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/recommend",
		`{"query": "recommend a good platform for my company logo design work"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RecommendationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.ResponseTypeSimple, resp.Type)
	require.NotNil(t, resp.Simple)
	assert.NotEmpty(t, resp.Simple.Main.Tool.Name)
}

func TestRecommend_BadBody(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/recommend", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommend_EmptyQuery(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/recommend", `{"query": "  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.RecommendationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.ResponseTypeError, resp.Type)
	assert.Equal(t, "INVALID_REQUEST", resp.ErrorCode)
}

func TestToolStats(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/tools", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats toolStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, len(catalog.BaseTools), stats.TotalTools)
	assert.NotEmpty(t, stats.Categories)

	total := 0
	for _, cc := range stats.ToolsByCategory {
		total += cc.Count
	}
	assert.Equal(t, stats.TotalTools, total)
}

func TestUpdateTools(t *testing.T) {
	s := newTestServer(t)

	body := `{"tools": [
		{"name": "Solo", "category": "text", "description": "d", "url": "u",
		 "pricing": {"free": true, "freemium": false, "paidOnly": false, "currency": "USD"},
		 "bestFor": ["writing"], "strength": 9.0}
	]}`
	rec := doRequest(t, s, http.MethodPost, "/api/update-tools", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp updateToolsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.ToolCount)

	stats := doRequest(t, s, http.MethodGet, "/api/tools", "")
	var after toolStatsResponse
	require.NoError(t, json.Unmarshal(stats.Body.Bytes(), &after))
	assert.Equal(t, 1, after.TotalTools)
}

func TestUpdateTools_RejectsInvalid(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/update-tools", `{"tools": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/api/update-tools",
		`{"tools": [{"name": "", "category": "text"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch_WithoutIndexReturnsEmpty(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/search?q=image+generator", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Query   string        `json:"query"`
		Results []interface{} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "image generator", resp.Query)
	assert.Empty(t, resp.Results)
}

func TestSearch_MissingQuery(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusOK, doRequest(t, s, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(t, s, http.MethodGet, "/ready", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
