// Package catalog manages the AI tool inventory in Redis with
// auto-initialization and a compiled-in fallback.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"toolrouter/internal/common/logger"
	"toolrouter/internal/models"

	"github.com/redis/go-redis/v9"
)

// Store reads and writes the tool catalog. All read paths degrade to
// BaseTools when Redis is unreachable, so callers never see a store error
// on reads.
type Store struct {
	client redis.Cmdable
	key    string
	logger logger.Logger
}

// NewStore creates a catalog store backed by the given Redis client.
func NewStore(client redis.Cmdable, key string, log logger.Logger) *Store {
	if key == "" {
		key = "tools"
	}
	return &Store{
		client: client,
		key:    key,
		logger: log.WithFields(map[string]interface{}{"component": "catalog"}),
	}
}

// Initialize seeds the catalog with BaseTools if the key is missing or holds
// an empty list. Errors are logged and swallowed.
func (s *Store) Initialize(ctx context.Context) {
	existing, err := s.load(ctx)
	if err == nil && len(existing) > 0 {
		return
	}
	if err != nil && err != redis.Nil {
		s.logger.Warn("Catalog store unavailable, using compiled-in tools", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.save(ctx, BaseTools); err != nil {
		s.logger.Warn("Failed to seed catalog", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	s.logger.Info("Catalog initialized", map[string]interface{}{
		"tool_count": len(BaseTools),
	})
}

// GetTools returns all tools, auto-initializing an empty store. Falls back
// to BaseTools on any store error.
func (s *Store) GetTools(ctx context.Context) []models.Tool {
	tools, err := s.load(ctx)
	if err == redis.Nil || (err == nil && len(tools) == 0) {
		s.Initialize(ctx)
		tools, err = s.load(ctx)
	}
	if err != nil || len(tools) == 0 {
		if err != nil && err != redis.Nil {
			s.logger.Warn("Catalog read failed, returning compiled-in tools", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return BaseTools
	}
	return tools
}

// UpdateTools replaces the stored catalog wholesale.
func (s *Store) UpdateTools(ctx context.Context, tools []models.Tool) error {
	for i, tool := range tools {
		if tool.Name == "" {
			return fmt.Errorf("tool at index %d has no name", i)
		}
		if !models.IsValidCategory(tool.Category) {
			return fmt.Errorf("tool %q has invalid category %q", tool.Name, tool.Category)
		}
	}
	if err := s.save(ctx, tools); err != nil {
		return fmt.Errorf("failed to update catalog: %w", err)
	}
	s.logger.Info("Catalog updated", map[string]interface{}{
		"tool_count": len(tools),
	})
	return nil
}

// GetToolsByCategory returns all tools in the given category.
func (s *Store) GetToolsByCategory(ctx context.Context, category models.Category) []models.Tool {
	var out []models.Tool
	for _, tool := range s.GetTools(ctx) {
		if tool.Category == category {
			out = append(out, tool)
		}
	}
	return out
}

// GetTopTools returns the strongest tools across all categories.
func (s *Store) GetTopTools(ctx context.Context, limit int) []models.Tool {
	tools := s.GetTools(ctx)
	sorted := make([]models.Tool, len(tools))
	copy(sorted, tools)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Strength > sorted[j].Strength
	})
	if limit <= 0 || limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}

// FindToolByName returns the tool with the exact given name, or nil.
func (s *Store) FindToolByName(ctx context.Context, name string) *models.Tool {
	for _, tool := range s.GetTools(ctx) {
		if tool.Name == name {
			t := tool
			return &t
		}
	}
	return nil
}

func (s *Store) load(ctx context.Context) ([]models.Tool, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		return nil, err
	}
	var tools []models.Tool
	if err := json.Unmarshal([]byte(raw), &tools); err != nil {
		return nil, fmt.Errorf("corrupt catalog payload: %w", err)
	}
	return tools, nil
}

func (s *Store) save(ctx context.Context, tools []models.Tool) error {
	payload, err := json.Marshal(tools)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, payload, 0).Err()
}
