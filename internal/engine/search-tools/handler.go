// internal/engine/search-tools/handler.go
// ============================================
// SEMANTIC TOOL SEARCH
// Embeds the query and runs a kNN search against the tool vector index.
// Search is advisory: every failure degrades to an empty result set so the
// keyword pipeline keeps working without it.
// ============================================
package searchtools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	openai "github.com/sashabaranov/go-openai"

	"toolrouter/internal/common/logger"
	"toolrouter/internal/common/metrics"
)

// Embedder is the slice of the OpenAI client the search needs.
type Embedder interface {
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

// ResultMetadata is the tool snapshot stored alongside each vector.
type ResultMetadata struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Pricing     string  `json:"pricing"`
	Strength    float64 `json:"strength"`
}

// Result is one semantic match: identifier, similarity and metadata.
type Result struct {
	ID       string         `json:"id"`
	Score    float64        `json:"score"`
	Metadata ResultMetadata `json:"metadata"`
}

// Handler runs semantic search over the tool index.
type Handler struct {
	config   Config
	embedder Embedder
	es       *elasticsearch.Client
	logger   logger.Logger
}

// NewHandler creates a semantic search handler.
func NewHandler(config Config, embedder Embedder, es *elasticsearch.Client, log logger.Logger) *Handler {
	defaults := DefaultConfig()
	if config.EmbeddingModel == "" {
		config.EmbeddingModel = defaults.EmbeddingModel
	}
	if config.Index == "" {
		config.Index = defaults.Index
	}
	if config.VectorField == "" {
		config.VectorField = defaults.VectorField
	}
	if config.TopK <= 0 {
		config.TopK = defaults.TopK
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	return &Handler{
		config:   config,
		embedder: embedder,
		es:       es,
		logger:   log.WithFields(map[string]interface{}{"component": "search-tools"}),
	}
}

// Execute embeds the query and returns the topK nearest tools. Any failure,
// from a missing client to an index error, yields an empty slice.
func (h *Handler) Execute(ctx context.Context, query string, topK int) []Result {
	if h.embedder == nil || h.es == nil || query == "" {
		return []Result{}
	}
	if topK <= 0 {
		topK = h.config.TopK
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	vector, err := h.embed(ctx, query)
	if err != nil {
		h.logger.Warn("Query embedding failed", map[string]interface{}{
			"error": err.Error(),
		})
		return []Result{}
	}

	results, err := h.knnSearch(ctx, vector, topK)
	if err != nil {
		h.logger.Warn("Vector search failed", map[string]interface{}{
			"index": h.config.Index,
			"error": err.Error(),
		})
		return []Result{}
	}
	return results
}

func (h *Handler) embed(ctx context.Context, query string) ([]float32, error) {
	start := time.Now()
	resp, err := h.embedder.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model:          openai.EmbeddingModel(h.config.EmbeddingModel),
		Input:          query,
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
	})
	metrics.ExternalCallDuration.WithLabelValues("openai_embeddings").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding response carried no vectors")
	}
	return resp.Data[0].Embedding, nil
}

type knnQuery struct {
	KNN  knnClause `json:"knn"`
	Size int       `json:"size"`
}

type knnClause struct {
	Field         string    `json:"field"`
	QueryVector   []float32 `json:"query_vector"`
	K             int       `json:"k"`
	NumCandidates int       `json:"num_candidates"`
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string         `json:"_id"`
			Score  float64        `json:"_score"`
			Source ResultMetadata `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (h *Handler) knnSearch(ctx context.Context, vector []float32, topK int) ([]Result, error) {
	body, err := json.Marshal(knnQuery{
		KNN: knnClause{
			Field:         h.config.VectorField,
			QueryVector:   vector,
			K:             topK,
			NumCandidates: topK * 10,
		},
		Size: topK,
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := h.es.Search(
		h.es.Search.WithContext(ctx),
		h.es.Search.WithIndex(h.config.Index),
		h.es.Search.WithBody(bytes.NewReader(body)),
	)
	metrics.ExternalCallDuration.WithLabelValues("elasticsearch_knn").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		raw, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search returned %s: %s", res.Status(), raw)
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		results = append(results, Result{
			ID:       hit.ID,
			Score:    hit.Score,
			Metadata: hit.Source,
		})
	}
	return results, nil
}
