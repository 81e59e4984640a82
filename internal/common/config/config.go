// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	APIs     APIsConfig     `mapstructure:"apis"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Intent   IntentConfig   `mapstructure:"intent"`
	Workflow WorkflowConfig `mapstructure:"workflow"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address      string `mapstructure:"address"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout int    `mapstructure:"write_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Redis         RedisConfig         `mapstructure:"redis"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ElasticsearchConfig struct {
	Addresses  []string `mapstructure:"addresses"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"password"`
	ToolsIndex string   `mapstructure:"tools_index"`
	URL        string   `mapstructure:"url"` // Single URL for backwards compatibility
}

// GetURL returns the first address or the URL field.
func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

// APIsConfig holds settings for external API integrations.
type APIsConfig struct {
	OpenAI struct {
		APIKey         string  `mapstructure:"api_key"`
		Model          string  `mapstructure:"model"`
		EmbeddingModel string  `mapstructure:"embedding_model"`
		Temperature    float64 `mapstructure:"temperature"`
		MaxTokens      int     `mapstructure:"max_tokens"`
		Timeout        int     `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"openai"`
}

// CatalogConfig holds settings for the tool catalog store.
type CatalogConfig struct {
	Key string `mapstructure:"key"`
}

// IntentConfig holds settings for intent parsing and caching.
type IntentConfig struct {
	CacheTTL           int     `mapstructure:"cache_ttl"` // seconds
	CachePrefix        string  `mapstructure:"cache_prefix"`
	MinConfidence      float64 `mapstructure:"min_confidence"`
	FastPathMaxWords   int     `mapstructure:"fast_path_max_words"`
	FallbackConfidence float64 `mapstructure:"fallback_confidence"`
	DefaultMultiSteps  int     `mapstructure:"default_multi_steps"`
	MaxRetries         int     `mapstructure:"max_retries"`
}

// WorkflowConfig holds settings for template matching and step assignment.
type WorkflowConfig struct {
	RegistryPath   string  `mapstructure:"registry_path"`
	MatchThreshold float64 `mapstructure:"match_threshold"`
	FallbackScore  float64 `mapstructure:"fallback_score"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Validate checks the few settings the engine cannot run without.
func (c *Config) Validate() error {
	if c.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required")
	}
	if c.Intent.MinConfidence < 0 || c.Intent.MinConfidence > 1 {
		return fmt.Errorf("intent.min_confidence must be within [0,1]")
	}
	return nil
}
