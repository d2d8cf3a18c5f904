package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFrom_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
docs:
  root: /srv/docs
llm:
  provider: openai
  api_key: sk-test
  model: gpt-4o-mini
store:
  driver: sqlite
  sqlite_path: /tmp/quiz.db
redis:
  address: localhost:6379
  generation_ttl: 60
logger:
  level: debug
`)

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/srv/docs", cfg.Docs.Root)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.False(t, cfg.LLM.Mock())
	assert.Equal(t, StoreDriverSQLite, cfg.Store.Driver)
	assert.Equal(t, time.Minute, cfg.Redis.GenerationTTL)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "DEMO_TOKEN", cfg.Auth.DemoToken)
}

func TestLoadConfigFrom_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "llm:\n  provider: anthropic\n")
	t.Setenv("ANTHROPIC_API_KEY", "anthropic-key")
	t.Setenv("DOCS_ROOT", "/env/docs")
	t.Setenv("JWT_SECRET_KEY", "env-secret")

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "anthropic-key", cfg.LLM.APIKey)
	assert.Equal(t, "/env/docs", cfg.Docs.Root)
	assert.Equal(t, "env-secret", cfg.JWT.SecretKey)
	assert.False(t, cfg.LLM.Mock())
}

func TestLoadConfigFrom_Invalid(t *testing.T) {
	path := writeConfig(t, "llm:\n  provider: bard\n")
	_, err := LoadConfigFrom(path)
	assert.ErrorContains(t, err, "unsupported llm provider")

	path = writeConfig(t, "store:\n  driver: oracle\n")
	_, err = LoadConfigFrom(path)
	assert.ErrorContains(t, err, "unsupported store driver")

	_, err = LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLLMConfig_Mock(t *testing.T) {
	assert.True(t, LLMConfig{Provider: ProviderAnthropic}.Mock())
	assert.False(t, LLMConfig{Provider: ProviderAnthropic, APIKey: "k"}.Mock())
	assert.True(t, LLMConfig{Provider: ProviderAnthropic, APIKey: "k", ForceMock: true}.Mock())
	assert.True(t, LLMConfig{Provider: ProviderOllama}.Mock())
	assert.False(t, LLMConfig{Provider: ProviderOllama, ServerURL: "http://localhost:11434"}.Mock())
}
