// internal/server/server.go
// ============================================
// HTTP SERVER
// Route layer over the recommendation engine: recommend, catalog
// management, semantic search, health and metrics.
// ============================================
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"toolrouter/internal/catalog"
	"toolrouter/internal/common/config"
	"toolrouter/internal/common/errors"
	"toolrouter/internal/common/logger"
	buildresponse "toolrouter/internal/engine/build-response"
	searchtools "toolrouter/internal/engine/search-tools"
	"toolrouter/internal/models"
)

// Server exposes the engine over HTTP.
type Server struct {
	config   config.ServerConfig
	pipeline *buildresponse.Handler
	store    *catalog.Store
	search   *searchtools.Handler
	logger   logger.Logger
	http     *http.Server
}

// New wires the HTTP server. The search handler may be nil when no vector
// index is configured; the search endpoint then returns empty results.
func New(
	cfg config.ServerConfig,
	pipeline *buildresponse.Handler,
	store *catalog.Store,
	search *searchtools.Handler,
	log logger.Logger,
) *Server {
	s := &Server{
		config:   cfg,
		pipeline: pipeline,
		store:    store,
		search:   search,
		logger:   log.WithFields(map[string]interface{}{"component": "http-server"}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/recommend", s.handleRecommend)
	mux.HandleFunc("GET /api/tools", s.handleToolStats)
	mux.HandleFunc("POST /api/update-tools", s.handleUpdateTools)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.http = &http.Server{
		Addr:         cfg.Address,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Millisecond,
	}
	return s
}

// Handler exposes the mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("HTTP server listening", map[string]interface{}{"address": s.config.Address})
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

type recommendRequest struct {
	Query         string `json:"query"`
	PricingFilter string `json:"pricingFilter,omitempty"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.NewInvalidRequestError("request body must be JSON"))
		return
	}

	resp := s.pipeline.Execute(r.Context(), buildresponse.Input{
		Query:         req.Query,
		PricingFilter: req.PricingFilter,
	})

	status := http.StatusOK
	if resp.Type == models.ResponseTypeError && resp.ErrorCode == string(errors.ErrCodeInvalidRequest) {
		status = http.StatusBadRequest
	}
	s.writeJSON(w, status, resp)
}

type toolStatsResponse struct {
	TotalTools      int             `json:"totalTools"`
	Categories      []string        `json:"categories"`
	ToolsByCategory []categoryCount `json:"toolsByCategory"`
	LastUpdate      string          `json:"lastUpdate"`
}

type categoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

func (s *Server) handleToolStats(w http.ResponseWriter, r *http.Request) {
	tools := s.store.GetTools(r.Context())

	counts := make(map[string]int)
	var order []string
	for _, tool := range tools {
		cat := string(tool.Category)
		if _, seen := counts[cat]; !seen {
			order = append(order, cat)
		}
		counts[cat]++
	}

	stats := toolStatsResponse{
		TotalTools: len(tools),
		Categories: order,
		LastUpdate: time.Now().UTC().Format(time.RFC3339),
	}
	for _, cat := range order {
		stats.ToolsByCategory = append(stats.ToolsByCategory, categoryCount{Category: cat, Count: counts[cat]})
	}
	s.writeJSON(w, http.StatusOK, stats)
}

type updateToolsRequest struct {
	Tools []models.Tool `json:"tools"`
}

type updateToolsResponse struct {
	Success   bool `json:"success"`
	ToolCount int  `json:"toolCount"`
}

func (s *Server) handleUpdateTools(w http.ResponseWriter, r *http.Request) {
	var req updateToolsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.NewInvalidRequestError("request body must be JSON"))
		return
	}
	if len(req.Tools) == 0 {
		s.writeError(w, http.StatusBadRequest, errors.NewInvalidRequestError("tools must not be empty"))
		return
	}

	if err := s.store.UpdateTools(r.Context(), req.Tools); err != nil {
		s.logger.Error("Catalog update rejected", map[string]interface{}{"error": err.Error()})
		s.writeError(w, http.StatusBadRequest, errors.NewInvalidRequestError(err.Error()))
		return
	}
	s.writeJSON(w, http.StatusOK, updateToolsResponse{Success: true, ToolCount: len(req.Tools)})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.writeError(w, http.StatusBadRequest, errors.NewInvalidRequestError("query parameter q is required"))
		return
	}

	results := []searchtools.Result{}
	if s.search != nil {
		results = s.search.Execute(r.Context(), query, 0)
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"results": results,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Response encoding failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, stdErr *errors.StandardError) {
	s.writeJSON(w, status, map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
	})
}
