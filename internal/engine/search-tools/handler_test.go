// internal/engine/search-tools/handler_test.go
package searchtools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolrouter/internal/common/logger"
)

type stubEmbedder struct {
	vector []float32
	err    error
	gotReq openai.EmbeddingRequest
}

func (s *stubEmbedder) CreateEmbeddings(_ context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error) {
	if req, ok := conv.(openai.EmbeddingRequest); ok {
		s.gotReq = req
	}
	if s.err != nil {
		return openai.EmbeddingResponse{}, s.err
	}
	return openai.EmbeddingResponse{
		Data: []openai.Embedding{{Embedding: s.vector}},
	}, nil
}

// newESServer fakes an Elasticsearch node. The product header is required
// by the v8 client's compatibility check.
func newESServer(t *testing.T, handler http.HandlerFunc) *elasticsearch.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return client
}

func searchHits() string {
	return `{
		"hits": {
			"hits": [
				{"_id": "midjourney", "_score": 0.92, "_source": {"name": "Midjourney", "category": "visual", "strength": 9.8}},
				{"_id": "dalle", "_score": 0.87, "_source": {"name": "DALL-E 3", "category": "visual", "strength": 9.0}}
			]
		}
	}`
}

func TestExecute_ReturnsRankedResults(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{0.1, 0.2, 0.3}}
	var gotBody knnQuery
	var gotPath string
	es := newESServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchHits()))
	})

	h := NewHandler(DefaultConfig(), embedder, es, logger.NewTestLogger(t))
	results := h.Execute(context.Background(), "best image generator", 2)

	require.Len(t, results, 2)
	assert.Equal(t, "midjourney", results[0].ID)
	assert.Equal(t, 0.92, results[0].Score)
	assert.Equal(t, "Midjourney", results[0].Metadata.Name)
	assert.Equal(t, "visual", results[0].Metadata.Category)

	assert.Equal(t, "/tools/_search", gotPath)
	assert.Equal(t, "embedding", gotBody.KNN.Field)
	assert.Equal(t, 2, gotBody.KNN.K)
	assert.Equal(t, 20, gotBody.KNN.NumCandidates)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, gotBody.KNN.QueryVector)

	assert.Equal(t, "text-embedding-3-small", string(embedder.gotReq.Model))
	assert.Equal(t, "best image generator", embedder.gotReq.Input)
}

func TestExecute_DefaultTopK(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{0.5}}
	var gotBody knnQuery
	es := newESServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hits":{"hits":[]}}`))
	})

	h := NewHandler(DefaultConfig(), embedder, es, logger.NewTestLogger(t))
	results := h.Execute(context.Background(), "anything", 0)

	assert.Empty(t, results)
	assert.Equal(t, 5, gotBody.KNN.K)
}

func TestExecute_EmbeddingFailureDegrades(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("quota exceeded")}
	es := newESServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("search must not run when embedding fails")
	})

	h := NewHandler(DefaultConfig(), embedder, es, logger.NewTestLogger(t))
	results := h.Execute(context.Background(), "best image generator", 3)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestExecute_SearchErrorDegrades(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{0.1}}
	es := newESServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"index_not_found_exception"}}`))
	})

	h := NewHandler(DefaultConfig(), embedder, es, logger.NewTestLogger(t))
	results := h.Execute(context.Background(), "best image generator", 3)

	assert.Empty(t, results)
}

func TestExecute_CorruptResponseDegrades(t *testing.T) {
	embedder := &stubEmbedder{vector: []float32{0.1}}
	es := newESServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not json`))
	})

	h := NewHandler(DefaultConfig(), embedder, es, logger.NewTestLogger(t))
	assert.Empty(t, h.Execute(context.Background(), "best image generator", 3))
}

func TestExecute_MissingDependencies(t *testing.T) {
	es := newESServer(t, func(w http.ResponseWriter, r *http.Request) {})
	log := logger.NewTestLogger(t)

	assert.Empty(t, NewHandler(DefaultConfig(), nil, es, log).Execute(context.Background(), "q", 3))

	embedder := &stubEmbedder{vector: []float32{0.1}}
	h := NewHandler(DefaultConfig(), embedder, nil, log)
	assert.Empty(t, h.Execute(context.Background(), "q", 3))

	h = NewHandler(DefaultConfig(), embedder, es, log)
	assert.Empty(t, h.Execute(context.Background(), "", 3))
}
