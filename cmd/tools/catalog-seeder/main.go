// cmd/tools/catalog-seeder/main.go
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"toolrouter/internal/catalog"
	"toolrouter/internal/common/config"
	"toolrouter/internal/common/database"
	"toolrouter/internal/common/logger"
	"toolrouter/internal/models"
)

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	indexCmd := flag.NewFlagSet("index", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Seed command flags
	seedFile := seedCmd.String("file", "", "Path to a tools JSON file (defaults to the compiled-in catalog)")
	seedForce := seedCmd.Bool("force", false, "Replace the stored catalog even if one exists")

	// Index command flags
	indexFile := indexCmd.String("file", "", "Path to a tools JSON file (defaults to the compiled-in catalog)")
	indexName := indexCmd.String("index", "", "Elasticsearch index name (defaults to configured tools index)")
	embedModel := indexCmd.String("model", "text-embedding-3-small", "Embedding model")

	// Validate command flags
	validateFile := validateCmd.String("file", "", "Path to a tools JSON file to validate")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := seed(*seedFile, *seedForce); err != nil {
			fmt.Printf("Error seeding catalog: %v\n", err)
			os.Exit(1)
		}

	case "index":
		indexCmd.Parse(os.Args[2:])
		if err := index(*indexFile, *indexName, *embedModel); err != nil {
			fmt.Printf("Error indexing tools: %v\n", err)
			os.Exit(1)
		}

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if *validateFile == "" {
			fmt.Println("Error: file is required for validate.")
			validateCmd.Usage()
			os.Exit(1)
		}
		tools, err := loadTools(*validateFile)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Validation passed. Found %d tools.\n", len(tools))

	case "help":
		fallthrough
	default:
		help()
	}
}

// loadTools reads a tools JSON file, or returns the compiled-in catalog
// when no path is given. Every tool is checked for a name and a known
// category before it is accepted.
func loadTools(path string) ([]models.Tool, error) {
	if path == "" {
		return catalog.BaseTools, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tools file: %w", err)
	}

	var tools []models.Tool
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("failed to parse tools file: %w", err)
	}

	for i, tool := range tools {
		if tool.Name == "" {
			return nil, fmt.Errorf("tool at index %d has no name", i)
		}
		if !models.IsValidCategory(tool.Category) {
			return nil, fmt.Errorf("tool %q has unknown category %q", tool.Name, tool.Category)
		}
	}
	return tools, nil
}

func seed(file string, force bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	tools, err := loadTools(file)
	if err != nil {
		return err
	}

	redisClient, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx); err != nil {
		return err
	}

	store := catalog.NewStore(redisClient.Client, cfg.Catalog.Key, logger.NewNoOpLogger())
	if !force {
		existing := store.GetTools(ctx)
		if len(existing) > 0 {
			fmt.Printf("Catalog already holds %d tools. Use -force to replace.\n", len(existing))
			return nil
		}
	}

	if err := store.UpdateTools(ctx, tools); err != nil {
		return err
	}
	fmt.Printf("Seeded catalog with %d tools.\n", len(tools))
	return nil
}

// toolDocument is the shape stored in the vector index. Metadata mirrors
// what the search endpoint returns for a hit.
type toolDocument struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Pricing     string    `json:"pricing"`
	Strength    float64   `json:"strength"`
	Embedding   []float32 `json:"embedding"`
}

func index(file, indexName, model string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	if cfg.APIs.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for indexing")
	}
	if indexName == "" {
		indexName = cfg.Database.Elasticsearch.ToolsIndex
	}
	if indexName == "" {
		indexName = "tools"
	}

	tools, err := loadTools(file)
	if err != nil {
		return err
	}

	esClient, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	if err != nil {
		return fmt.Errorf("elasticsearch connection failed: %w", err)
	}
	if err := esClient.Ping(); err != nil {
		return err
	}

	openaiClient := openai.NewClient(cfg.APIs.OpenAI.APIKey)
	ctx := context.Background()

	for _, tool := range tools {
		embedding, err := embedTool(ctx, openaiClient, model, tool)
		if err != nil {
			return fmt.Errorf("embedding failed for %q: %w", tool.Name, err)
		}

		doc := toolDocument{
			Name:        tool.Name,
			Category:    string(tool.Category),
			Description: tool.Description,
			URL:         tool.URL,
			Pricing:     tool.Pricing.Label(),
			Strength:    tool.Strength,
			Embedding:   embedding,
		}
		body, err := json.Marshal(doc)
		if err != nil {
			return err
		}

		res, err := esClient.Client.Index(
			indexName,
			bytes.NewReader(body),
			esClient.Client.Index.WithContext(ctx),
			esClient.Client.Index.WithDocumentID(docID(tool.Name)),
		)
		if err != nil {
			return fmt.Errorf("index request failed for %q: %w", tool.Name, err)
		}
		if res.IsError() {
			res.Body.Close()
			return fmt.Errorf("index request rejected for %q: %s", tool.Name, res.Status())
		}
		res.Body.Close()
		fmt.Printf("Indexed %s\n", tool.Name)
	}

	fmt.Printf("Indexed %d tools into %q.\n", len(tools), indexName)
	return nil
}

// embedTool builds a textual profile of the tool and embeds it. The profile
// concatenates the fields a query is likely to mention.
func embedTool(ctx context.Context, client *openai.Client, model string, tool models.Tool) ([]float32, error) {
	text := fmt.Sprintf(
		"Tool: %s\nCategory: %s\nDescription: %s\nBest For: %s\nFeatures: %s\nPricing: %s",
		tool.Name,
		tool.Category,
		tool.Description,
		strings.Join(tool.BestFor, ", "),
		strings.Join(tool.Features, ", "),
		tool.Pricing.Label(),
	)

	resp, err := client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model:          openai.EmbeddingModel(model),
		Input:          []string{text},
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding response was empty")
	}
	return resp.Data[0].Embedding, nil
}

func docID(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

func help() {
	fmt.Print(`
Usage: catalog-seeder <command> [flags]

Commands:
  seed     Write the tool catalog into Redis
  index    Embed and index tools into the Elasticsearch vector index
  validate Validate a tools JSON file
  help     Show this help message

Examples:
  catalog-seeder seed
  catalog-seeder seed -file configs/tools.json -force
  catalog-seeder index -index tools
  catalog-seeder validate -file configs/tools.json

Use 'catalog-seeder <command> -h' for more information about a command.
`)
}
