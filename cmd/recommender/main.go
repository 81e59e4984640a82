// cmd/recommender/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"toolrouter/internal/catalog"
	"toolrouter/internal/common/config"
	"toolrouter/internal/common/database"
	"toolrouter/internal/common/logger"
	"toolrouter/internal/common/observability"
	"toolrouter/internal/server"
	"toolrouter/pkg/registry"

	analyzeintent "toolrouter/internal/engine/analyze-intent"
	buildresponse "toolrouter/internal/engine/build-response"
	cacheintent "toolrouter/internal/engine/cache-intent"
	generateworkflow "toolrouter/internal/engine/generate-workflow"
	parseuserintent "toolrouter/internal/engine/parse-user-intent"
	ranktools "toolrouter/internal/engine/rank-tools"
	searchtools "toolrouter/internal/engine/search-tools"
	selecttemplate "toolrouter/internal/engine/select-template"
	"toolrouter/internal/models"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting recommender...")

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		// Test the connection with context
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init Elasticsearch with retry (optional) ---
	// The recommendation path never touches the vector index, so a missing
	// cluster only disables the search endpoint.
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		// Test the connection
		return esClient.Ping()
	}, 3, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Warn("elasticsearch unavailable, semantic search disabled", zap.Error(err))
		esClient = nil
	} else {
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Init OpenAI client ---
	openaiClient := openai.NewClient(cfg.APIs.OpenAI.APIKey)
	if cfg.APIs.OpenAI.APIKey == "" {
		zapLog.Warn("OPENAI_API_KEY not set, intent analysis will use keyword fallback")
	}

	// --- Init Catalog ---
	store := catalog.NewStore(redisClient.Client, cfg.Catalog.Key, log)
	store.Initialize(ctx)

	// --- Load Workflow Templates ---
	templates := loadTemplates(cfg.Workflow.RegistryPath, zapLog)

	// --- Wire the Engine ---
	cache := cacheintent.NewHandler(
		&cacheintent.Config{
			Prefix: cfg.Intent.CachePrefix,
			TTL:    time.Duration(cfg.Intent.CacheTTL) * time.Second,
		},
		redisClient.Client, log,
	)

	parser := parseuserintent.NewHandler(
		&parseuserintent.Config{
			Model:              cfg.APIs.OpenAI.Model,
			Temperature:        float32(cfg.APIs.OpenAI.Temperature),
			MaxTokens:          cfg.APIs.OpenAI.MaxTokens,
			Timeout:            time.Duration(cfg.APIs.OpenAI.Timeout) * time.Millisecond,
			FastPathMaxWords:   cfg.Intent.FastPathMaxWords,
			MinConfidence:      cfg.Intent.MinConfidence,
			FallbackConfidence: cfg.Intent.FallbackConfidence,
			DefaultMultiSteps:  cfg.Intent.DefaultMultiSteps,
		},
		openaiClient, log,
	)

	analyzer := analyzeintent.NewHandler(cache, parser, log)
	ranker := ranktools.NewHandler(nil, store, log)
	matcher := selecttemplate.NewHandler(
		selecttemplate.Config{MinScore: cfg.Workflow.MatchThreshold},
		templates, log,
	)
	generator := generateworkflow.NewHandler(store, log)

	pipeline := buildresponse.NewHandler(
		buildresponse.DefaultConfig(),
		analyzer, ranker, matcher, generator, log,
	)

	var search *searchtools.Handler
	if esClient != nil {
		search = searchtools.NewHandler(
			searchtools.Config{
				EmbeddingModel: cfg.APIs.OpenAI.EmbeddingModel,
				Index:          cfg.Database.Elasticsearch.ToolsIndex,
			},
			openaiClient, esClient.Client, log,
		)
	}

	// --- HTTP Server ---
	srv := server.New(cfg.Server, pipeline, store, search, log)

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Recommender stopped gracefully")
}

// loadTemplates reads the workflow template registry when a path is
// configured, falling back to the compiled-in template set.
func loadTemplates(path string, log *zap.Logger) []models.WorkflowTemplate {
	if path == "" {
		return selecttemplate.BuiltinTemplates()
	}

	reg, err := registry.LoadRegistry(path)
	if err != nil {
		log.Warn("template registry load failed, using compiled-in templates",
			zap.String("path", path),
			zap.Error(err),
		)
		return selecttemplate.BuiltinTemplates()
	}

	log.Info("template registry loaded",
		zap.String("path", path),
		zap.String("version", reg.Version),
		zap.Int("templates", len(reg.Templates)),
	)
	return reg.Templates
}
