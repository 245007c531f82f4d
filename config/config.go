package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Retrieval
	Qdrant    QdrantConfig
	Embedding EmbeddingConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Assistant
	Router       RouterConfig
	FAQ          FAQConfig
	Conversation ConversationConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RateLimitConfig limits chat requests per client IP.
type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	Burst           int
	TrackedClients  int
	ClientIdleReset time.Duration
}

// QdrantConfig points at the vector index. An empty URL selects the in-memory index.
type QdrantConfig struct {
	URL    string
	APIKey string
}

// EmbeddingConfig selects the embedding provider ("voyage" or "cohere").
type EmbeddingConfig struct {
	Provider     string
	Model        string
	BaseURL      string
	VoyageAPIKey string
	CohereAPIKey string
	CacheSize    int
	CacheTTL     time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
	MaxTokens       int              `yaml:"max_tokens"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// RouterConfig configures intent classification. An empty RoutesFile uses the built-in routes.
type RouterConfig struct {
	Threshold  float64
	RoutesFile string
}

// FAQConfig configures the FAQ knowledge base.
type FAQConfig struct {
	Source     string // file path or doublestar glob
	Collection string
	IngestMode string // existence | content_hash | force
	LockDir    string
	TopK       int
}

// ConversationConfig bounds the in-process session store.
type ConversationConfig struct {
	MaxHistory  int
	SessionTTL  time.Duration
	MaxSessions int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.TrackedClients = viper.GetInt("rate_limit.tracked_clients")
	cfg.RateLimit.ClientIdleReset = viper.GetDuration("rate_limit.client_idle_reset")

	// Qdrant
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.APIKey = viper.GetString("qdrant.api_key")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	// Embeddings
	cfg.Embedding.Provider = viper.GetString("embedding.provider")
	cfg.Embedding.Model = viper.GetString("embedding.model")
	cfg.Embedding.BaseURL = viper.GetString("embedding.base_url")
	cfg.Embedding.VoyageAPIKey = expandEnvVar(viper.GetString("embedding.voyage_api_key"))
	cfg.Embedding.CohereAPIKey = expandEnvVar(viper.GetString("embedding.cohere_api_key"))
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Embedding.VoyageAPIKey = voyageKey
	}
	if cohereKey := viper.GetString("cohere_api_key"); cohereKey != "" {
		cfg.Embedding.CohereAPIKey = cohereKey
	}
	cfg.Embedding.CacheSize = viper.GetInt("embedding.cache_size")
	cfg.Embedding.CacheTTL = viper.GetDuration("embedding.cache_ttl")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = defaultProviders()
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	// Assistant
	cfg.Router.Threshold = viper.GetFloat64("router.threshold")
	cfg.Router.RoutesFile = viper.GetString("router.routes_file")

	cfg.FAQ.Source = viper.GetString("faq.source")
	cfg.FAQ.Collection = viper.GetString("faq.collection")
	cfg.FAQ.IngestMode = viper.GetString("faq.ingest_mode")
	cfg.FAQ.LockDir = viper.GetString("faq.lock_dir")
	cfg.FAQ.TopK = viper.GetInt("faq.top_k")

	cfg.Conversation.MaxHistory = viper.GetInt("conversation.max_history")
	cfg.Conversation.SessionTTL = viper.GetDuration("conversation.session_ttl")
	cfg.Conversation.MaxSessions = viper.GetInt("conversation.max_sessions")

	if err := validateAssistantConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.tracked_clients", 1000)
	viper.SetDefault("rate_limit.client_idle_reset", "5m")

	viper.SetDefault("embedding.provider", "cohere")
	viper.SetDefault("embedding.cache_size", 512)
	viper.SetDefault("embedding.cache_ttl", "30m")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "0s") // 0 disables the chain deadline
	viper.SetDefault("llm.temperature", 0.0)
	viper.SetDefault("llm.max_tokens", 512)

	viper.SetDefault("router.threshold", 0.25)

	viper.SetDefault("faq.source", "data/faq_data.csv")
	viper.SetDefault("faq.collection", "faq")
	viper.SetDefault("faq.ingest_mode", "existence")
	viper.SetDefault("faq.lock_dir", os.TempDir())
	viper.SetDefault("faq.top_k", 2)

	viper.SetDefault("conversation.max_history", 20)
	viper.SetDefault("conversation.session_ttl", "30m")
	viper.SetDefault("conversation.max_sessions", 10000)
}

// defaultProviders is used when config.yaml has no llm.providers section.
func defaultProviders() []ProviderConfig {
	return []ProviderConfig{
		{
			Name:     "groq",
			Enabled:  true,
			Priority: 1,
			APIKey:   expandEnvVar("${GROQ_API_KEY}"),
			Model:    "llama-3.3-70b-versatile",
			Timeout:  "30s",
		},
		{
			Name:     "gemini",
			Enabled:  true,
			Priority: 2,
			APIKey:   expandEnvVar("${GEMINI_API_KEY}"),
			Model:    "gemini-2.5-flash",
			Timeout:  "30s",
		},
	}
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}.
// An unset variable expands to the empty string.
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		return os.Getenv(envVar)
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	if cfg.RetryAttempts < 1 {
		return fmt.Errorf("retry_attempts must be at least 1")
	}

	return nil
}

func validateAssistantConfig(cfg *Config) error {
	if cfg.Router.Threshold < -1 || cfg.Router.Threshold > 1 {
		return fmt.Errorf("router.threshold must be within [-1, 1], got %v", cfg.Router.Threshold)
	}
	switch cfg.FAQ.IngestMode {
	case "existence", "content_hash", "force":
	default:
		return fmt.Errorf("faq.ingest_mode must be one of existence, content_hash, force, got %q", cfg.FAQ.IngestMode)
	}
	if cfg.FAQ.Collection == "" {
		return fmt.Errorf("faq.collection is required")
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
