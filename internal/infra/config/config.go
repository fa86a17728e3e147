package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Embedder backends for keyword extraction.
const (
	EmbedderOpenAI  = "openai"
	EmbedderHashing = "hashing"
)

// Tagger backends for the reduction pipeline.
const (
	TaggerProse    = "prose"
	TaggerFallback = "fallback"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Reduction   ReductionConfig   `yaml:"reduction"`
	Energy      EnergyConfig      `yaml:"energy"`
	Spelling    SpellingConfig    `yaml:"spelling"`
	LLM         LLMConfig         `yaml:"llm"`
	AIOptimizer AIOptimizerConfig `yaml:"aiOptimizer"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
	Retry        RetryConfig     `yaml:"retry"`
	CORS         CORSConfig      `yaml:"cors"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries of POST requests answered with 5xx.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// CORSConfig lists allowed origins. An empty list or "*" allows any origin.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// ReductionConfig controls the rule-based prompt reduction pipeline.
type ReductionConfig struct {
	CataloguePath string `yaml:"cataloguePath"`
	Tagger        string `yaml:"tagger"`
}

// EnergyConfig holds the token energy cost table in Wh per 1000 tokens.
type EnergyConfig struct {
	DefaultModel string             `yaml:"defaultModel"`
	BaseEncoding string             `yaml:"baseEncoding"`
	Costs        map[string]float64 `yaml:"costs"`
}

// SpellingConfig controls the spell-check service.
type SpellingConfig struct {
	Language         string      `yaml:"language"`
	MaxSuggestions   int         `yaml:"maxSuggestions"`
	DictionaryPath   string      `yaml:"dictionaryPath"`
	BatchConcurrency int         `yaml:"batchConcurrency"`
	Store            StoreConfig `yaml:"store"`
}

// StoreConfig selects where custom dictionary words are persisted.
type StoreConfig struct {
	Prefix string       `yaml:"prefix"`
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the word store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey         string        `yaml:"apiKey"`
	BaseURL        string        `yaml:"baseUrl"`
	Model          string        `yaml:"model"`
	EmbeddingModel string        `yaml:"embeddingModel"`
	Temperature    float32       `yaml:"temperature"`
	Timeout        time.Duration `yaml:"timeout"`
}

// AIOptimizerConfig controls summarization and keyword compression.
type AIOptimizerConfig struct {
	Prompt   string `yaml:"prompt"`
	Embedder string `yaml:"embedder"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	envString("HTTP_ADDRESS", &cfg.HTTP.Address)
	envDuration("HTTP_READ_TIMEOUT", &cfg.HTTP.ReadTimeout)
	envDuration("HTTP_WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout)
	envBool("HTTP_RATE_LIMIT_ENABLED", &cfg.HTTP.RateLimit.Enabled)
	envInt("HTTP_RATE_LIMIT_RPM", &cfg.HTTP.RateLimit.RequestsPerMinute)
	envInt("HTTP_RATE_LIMIT_BURST", &cfg.HTTP.RateLimit.Burst)
	envBool("HTTP_RETRY_ENABLED", &cfg.HTTP.Retry.Enabled)
	envInt("HTTP_RETRY_MAX_ATTEMPTS", &cfg.HTTP.Retry.MaxAttempts)
	envDuration("HTTP_RETRY_BASE_BACKOFF", &cfg.HTTP.Retry.BaseBackoff)
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORS.AllowedOrigins = splitList(v)
	}

	envString("REDUCTION_CATALOGUE_PATH", &cfg.Reduction.CataloguePath)
	envString("REDUCTION_TAGGER", &cfg.Reduction.Tagger)

	envString("ENERGY_DEFAULT_MODEL", &cfg.Energy.DefaultModel)
	envString("ENERGY_BASE_ENCODING", &cfg.Energy.BaseEncoding)

	envString("SPELLING_LANGUAGE", &cfg.Spelling.Language)
	envInt("SPELLING_MAX_SUGGESTIONS", &cfg.Spelling.MaxSuggestions)
	envString("SPELLING_DICTIONARY_PATH", &cfg.Spelling.DictionaryPath)
	envInt("SPELLING_BATCH_CONCURRENCY", &cfg.Spelling.BatchConcurrency)
	envString("SPELLING_STORE_PREFIX", &cfg.Spelling.Store.Prefix)
	envBool("SPELLING_VALKEY_ENABLED", &cfg.Spelling.Store.Valkey.Enabled)
	envString("SPELLING_VALKEY_ADDR", &cfg.Spelling.Store.Valkey.Addr)

	envString("LLM_API_KEY", &cfg.LLM.APIKey)
	envString("LLM_BASE_URL", &cfg.LLM.BaseURL)
	envString("LLM_MODEL", &cfg.LLM.Model)
	envString("LLM_EMBEDDING_MODEL", &cfg.LLM.EmbeddingModel)
	envDuration("LLM_TIMEOUT", &cfg.LLM.Timeout)
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}

	envString("AI_OPTIMIZER_PROMPT", &cfg.AIOptimizer.Prompt)
	envString("AI_OPTIMIZER_EMBEDDER", &cfg.AIOptimizer.Embedder)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func envDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 90 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/ai_prompt-optimizer/**",
					"/spell-check/dictionary",
				},
			},
			CORS: CORSConfig{AllowedOrigins: []string{"*"}},
		},
		Reduction: ReductionConfig{
			Tagger: TaggerProse,
		},
		Energy: EnergyConfig{
			DefaultModel: "gpt-4",
			BaseEncoding: "cl100k_base",
			Costs: map[string]float64{
				"gpt-3.5-turbo":   0.002,
				"gpt-4":           0.008,
				"gpt-4-turbo":     0.006,
				"claude-3-sonnet": 0.005,
				"claude-3-opus":   0.012,
				"claude-4-sonnet": 0.005,
				"default":         0.005,
			},
		},
		Spelling: SpellingConfig{
			Language:         "en",
			MaxSuggestions:   5,
			BatchConcurrency: 4,
			Store: StoreConfig{
				Prefix: "prompt-optimizer:spelling",
			},
		},
		LLM: LLMConfig{
			Model:          "gpt-4o-mini",
			EmbeddingModel: "text-embedding-3-small",
			Temperature:    0.2,
			Timeout:        60 * time.Second,
		},
		AIOptimizer: AIOptimizerConfig{
			Prompt:   "You condense prompts written for large language models. Keep every instruction and constraint, drop pleasantries and filler. Respond exactly as:\nSUMMARY:\n<summary>",
			Embedder: EmbedderOpenAI,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	switch c.Reduction.Tagger {
	case TaggerProse, TaggerFallback:
	default:
		return fmt.Errorf("reduction.tagger must be %q or %q", TaggerProse, TaggerFallback)
	}
	if strings.TrimSpace(c.Energy.DefaultModel) == "" {
		return errors.New("energy.defaultModel cannot be empty")
	}
	if _, ok := c.Energy.Costs["default"]; !ok {
		return errors.New("energy.costs must contain a default entry")
	}
	for model, cost := range c.Energy.Costs {
		if cost < 0 {
			return fmt.Errorf("energy.costs.%s cannot be negative", model)
		}
	}
	if c.Spelling.MaxSuggestions <= 0 {
		return errors.New("spelling.maxSuggestions must be positive")
	}
	if c.Spelling.BatchConcurrency <= 0 {
		return errors.New("spelling.batchConcurrency must be positive")
	}
	if c.Spelling.Store.Valkey.Enabled && strings.TrimSpace(c.Spelling.Store.Valkey.Addr) == "" {
		return errors.New("spelling.store.valkey.addr cannot be empty when valkey is enabled")
	}
	switch c.AIOptimizer.Embedder {
	case EmbedderOpenAI:
		if strings.TrimSpace(c.LLM.EmbeddingModel) == "" {
			return errors.New("llm.embeddingModel cannot be empty")
		}
	case EmbedderHashing:
	default:
		return fmt.Errorf("aiOptimizer.embedder must be %q or %q", EmbedderOpenAI, EmbedderHashing)
	}
	if c.LLM.Timeout < 0 {
		return errors.New("llm.timeout cannot be negative")
	}
	return nil
}
