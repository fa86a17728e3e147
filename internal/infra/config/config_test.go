package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 90*time.Second, cfg.HTTP.WriteTimeout)
	require.Equal(t, "gpt-4", cfg.Energy.DefaultModel)
	require.Equal(t, 0.012, cfg.Energy.Costs["claude-3-opus"])
	require.Equal(t, 5, cfg.Spelling.MaxSuggestions)
	require.Equal(t, TaggerProse, cfg.Reduction.Tagger)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORS.AllowedOrigins)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := `
http:
  address: ":9090"
energy:
  defaultModel: claude-3-sonnet
  costs:
    llama-3-70b: 0.004
spelling:
  maxSuggestions: 3
aiOptimizer:
  embedder: hashing
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("HTTP_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SPELLING_BATCH_CONCURRENCY", "8")
	t.Setenv("HTTP_RETRY_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "claude-3-sonnet", cfg.Energy.DefaultModel)
	require.Equal(t, 0.004, cfg.Energy.Costs["llama-3-70b"])
	require.Equal(t, 0.005, cfg.Energy.Costs["default"])
	require.Equal(t, 3, cfg.Spelling.MaxSuggestions)
	require.Equal(t, 8, cfg.Spelling.BatchConcurrency)
	require.Equal(t, EmbedderHashing, cfg.AIOptimizer.Embedder)
	require.Equal(t, "sk-test", cfg.LLM.APIKey)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORS.AllowedOrigins)
	require.False(t, cfg.HTTP.Retry.Enabled)
}

func TestLoadRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: [::"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty address", mutate: func(c *Config) { c.HTTP.Address = "" }, wantErr: "http.address cannot be empty"},
		{name: "missing default cost", mutate: func(c *Config) { delete(c.Energy.Costs, "default") }, wantErr: "energy.costs must contain a default entry"},
		{name: "negative cost", mutate: func(c *Config) { c.Energy.Costs["gpt-4"] = -1 }, wantErr: "energy.costs.gpt-4 cannot be negative"},
		{name: "valkey without addr", mutate: func(c *Config) { c.Spelling.Store.Valkey.Enabled = true }, wantErr: "spelling.store.valkey.addr cannot be empty when valkey is enabled"},
		{name: "unknown embedder", mutate: func(c *Config) { c.AIOptimizer.Embedder = "bert" }, wantErr: `aiOptimizer.embedder must be "openai" or "hashing"`},
		{name: "unknown tagger", mutate: func(c *Config) { c.Reduction.Tagger = "nltk" }, wantErr: `reduction.tagger must be "prose" or "fallback"`},
		{name: "zero suggestions", mutate: func(c *Config) { c.Spelling.MaxSuggestions = 0 }, wantErr: "spelling.maxSuggestions must be positive"},
		{name: "rate limit burst", mutate: func(c *Config) { c.HTTP.RateLimit.Burst = 0 }, wantErr: "http.rateLimit.burst must be positive"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}
