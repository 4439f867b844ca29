package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var managedEnv = []string{
	"CONFIG_PATH",
	"GROQ_API_KEY",
	"LLM_API_KEY",
	"LLM_BASE_URL",
	"LLM_MODEL",
	"LLM_TEMPERATURE",
	"LLM_MAX_TOKENS",
	"LLM_REQUEST_TIMEOUT",
	"LLM_TOKEN_ENCODING",
	"HTTP_ADDRESS",
	"HTTP_ALLOWED_ORIGINS",
	"HTTP_RATE_LIMIT_ENABLED",
}

// isolate runs the test from an empty directory with every managed variable unset.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range managedEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadFailsWithoutAPIKey(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.Nil(t, cfg)
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("GROQ_API_KEY", "gsk_test")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "gsk_test", cfg.LLM.APIKey)
	require.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Model)
	require.Equal(t, "https://api.groq.com/openai/v1", cfg.LLM.BaseURL)
	require.InDelta(t, 0.5, cfg.LLM.Temperature, 1e-6)
	require.Equal(t, 300, cfg.LLM.MaxTokens)
	require.Equal(t, 60*time.Second, cfg.LLM.RequestTimeout)
	require.Equal(t, ":8080", cfg.HTTP.Address)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GROQ_API_KEY=from-dotenv\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-dotenv", cfg.LLM.APIKey)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GROQ_API_KEY=from-dotenv\n"), 0o600))
	t.Setenv("GROQ_API_KEY", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.LLM.APIKey)
}

func TestLoadFallsBackToGenericKey(t *testing.T) {
	isolate(t)
	t.Setenv("LLM_API_KEY", "generic")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "generic", cfg.LLM.APIKey)
}

func TestLoadFileThenEnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	yamlBody := []byte(`
http:
  address: ":9090"
  allowedOrigins: ["https://a.example"]
llm:
  apiKey: file-key
  model: file-model
  maxTokens: 120
`)
	require.NoError(t, os.WriteFile(path, yamlBody, 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://b.example, https://c.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "file-key", cfg.LLM.APIKey)
	require.Equal(t, "env-model", cfg.LLM.Model)
	require.Equal(t, 120, cfg.LLM.MaxTokens)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, []string{"https://b.example", "https://c.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [unterminated"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("GROQ_API_KEY", "k")

	_, err := Load()
	require.ErrorContains(t, err, "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing key", mutate: func(c *Config) { c.LLM.APIKey = "  " }, wantErr: ErrMissingAPIKey.Error()},
		{name: "empty address", mutate: func(c *Config) { c.HTTP.Address = "" }, wantErr: "http.address cannot be empty"},
		{name: "empty model", mutate: func(c *Config) { c.LLM.Model = "" }, wantErr: "llm.model cannot be empty"},
		{name: "temperature too high", mutate: func(c *Config) { c.LLM.Temperature = 2.5 }, wantErr: "llm.temperature must be between 0 and 2"},
		{name: "zero max tokens", mutate: func(c *Config) { c.LLM.MaxTokens = 0 }, wantErr: "llm.maxTokens must be positive"},
		{name: "negative timeout", mutate: func(c *Config) { c.LLM.RequestTimeout = -time.Second }, wantErr: "llm.requestTimeout cannot be negative"},
		{name: "bad rate limit", mutate: func(c *Config) { c.HTTP.RateLimit.Burst = 0 }, wantErr: "http.rateLimit.burst must be positive"},
		{name: "rate limit disabled", mutate: func(c *Config) {
			c.HTTP.RateLimit.Enabled = false
			c.HTTP.RateLimit.Burst = 0
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			cfg.LLM.APIKey = "key"
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

func TestReadSkipsValidation(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  tokenEncoding: o200k_base\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Read()
	require.NoError(t, err)
	require.Empty(t, cfg.LLM.APIKey)
	require.Equal(t, "o200k_base", cfg.LLM.TokenEncoding)
}
