package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, 2*time.Minute, cfg.LLM.Timeout)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSize)
	assert.True(t, cfg.IsDemoMode())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("LLM_MODEL", "gemini-2.5-pro")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.IsDemoMode())
}

func TestLoadConfigYAMLWithEnvExpansion(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("TEST_CV_PARSER_HOST", "127.0.0.1")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
server:
  port: 9000
  host: "${TEST_CV_PARSER_HOST}"
llm:
  provider: "claude"
  model: "claude-3-haiku-20240307"
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg, err := LoadConfig(configPath)

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
}

func TestLoadConfigRejectsUnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "cerebras")

	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("LLM_PROVIDER", "")

	cfg, err := LoadConfig("does/not/exist.yaml")

	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}
