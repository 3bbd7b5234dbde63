package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Storage struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsweaver.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"storage" json:"storage" jsonschema:"description=Storage configuration"`

	Fetch struct {
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
		UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=NewsWeaver/1.0,description=User agent for feed requests"`
	} `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`

	Enrich struct {
		MaxConcurrent int `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,description=Maximum concurrent classification calls per batch (0 = unbounded)"`
	} `yaml:"enrich" json:"enrich" jsonschema:"description=Enrichment pipeline configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for summarization and classification"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Full-article content extraction configuration"`

	DefaultFeeds []FeedSeed `yaml:"default_feeds" json:"default_feeds" jsonschema:"description=Feeds seeded into an empty store on first run"`
}

// LLMConfig holds LLM configuration for summarization and classification
type LLMConfig struct {
	Endpoint       string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey         string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model          string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature    float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens      int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SummaryPrompt  string        `yaml:"summary_prompt" json:"summary_prompt" jsonschema:"description=System prompt for summarization (optional)"`
	ClassifyPrompt string        `yaml:"classify_prompt" json:"classify_prompt" jsonschema:"description=System prompt for classification (optional)"`
	UseJSONMode    bool          `yaml:"use_json_mode" json:"use_json_mode" jsonschema:"default=false,description=Use JSON response format (not all models support this)"`
}

// ExtractionConfig holds full-article content extraction settings
type ExtractionConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable the read-full-article endpoint"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=NewsWeaver/1.0,description=User agent for article page requests"`
}

// FeedSeed describes a default subscription
type FeedSeed struct {
	Name     string `yaml:"name" json:"name" jsonschema:"required,description=Feed display name"`
	URL      string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Category string `yaml:"category" json:"category" jsonschema:"description=Feed category for sidebar grouping"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills in unset fields
func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "file:newsweaver.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Storage.MaxOpenConns == 0 {
		cfg.Storage.MaxOpenConns = 10
	}
	if cfg.Storage.MaxIdleConns == 0 {
		cfg.Storage.MaxIdleConns = 5
	}
	if cfg.Storage.ConnMaxLifetime == 0 {
		cfg.Storage.ConnMaxLifetime = 3600
	}

	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "NewsWeaver/1.0"
	}

	if cfg.Enrich.MaxConcurrent == 0 {
		cfg.Enrich.MaxConcurrent = 5
	}

	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}

	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "NewsWeaver/1.0"
	}

	if len(cfg.DefaultFeeds) == 0 {
		cfg.DefaultFeeds = []FeedSeed{
			{Name: "TechCrunch", URL: "https://techcrunch.com/feed/", Category: "Technology"},
			{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml", Category: "Technology"},
		}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.Enrich.MaxConcurrent < 0 {
		return fmt.Errorf("enrich.max_concurrent must be non-negative")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}
	if cfg.Extraction.Enabled && cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}
	for _, seed := range cfg.DefaultFeeds {
		if seed.Name == "" || seed.URL == "" {
			return fmt.Errorf("default feed entries need both name and url")
		}
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}
