package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-parser-api/internal/config"
)

func demoConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("LLM_API_KEY", "")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	require.True(t, cfg.IsDemoMode())
	return cfg
}

func TestManagerDemoModeReturnsCannedCV(t *testing.T) {
	manager := NewManager(demoConfig(t))
	require.NoError(t, manager.Start())

	cv, err := manager.StructureCV(context.Background(), "completely ignored input")

	require.NoError(t, err)
	assert.Equal(t, "John Doe", cv["name"])
	assert.Equal(t, "Experienced software engineer with 5+ years in web development", cv["summary"])

	contact, ok := cv["contact"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "john.doe@example.com", contact["email"])

	assert.Len(t, cv["skills"], 3)
	assert.Len(t, cv["languages"], 2)
	assert.Len(t, cv["certifications"], 2)
}

func TestManagerDemoModeIgnoresInput(t *testing.T) {
	manager := NewManager(demoConfig(t))
	require.NoError(t, manager.Start())

	first, err := manager.StructureCV(context.Background(), "input one")
	require.NoError(t, err)
	second, err := manager.StructureCV(context.Background(), "input two")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestManagerProviderName(t *testing.T) {
	manager := NewManager(demoConfig(t))

	assert.Equal(t, "none", manager.GetProviderName())
	require.NoError(t, manager.Start())
	assert.Equal(t, "demo", manager.GetProviderName())
	assert.True(t, manager.IsDemoMode())
}

func TestManagerNotStarted(t *testing.T) {
	cfg := demoConfig(t)
	cfg.LLM.APIKey = "test-key"
	manager := NewManager(cfg)

	_, err := manager.StructureCV(context.Background(), "text")
	assert.Error(t, err)
}

func TestFactoryUnsupportedProvider(t *testing.T) {
	cfg := demoConfig(t)
	cfg.LLM.Provider = "unknown"

	_, err := NewFactory(cfg).CreateProvider()
	assert.Error(t, err)
}

func TestFactorySupportedProviders(t *testing.T) {
	factory := NewFactory(demoConfig(t))

	assert.Equal(t, []string{"claude", "gemini"}, factory.GetSupportedProviders())
}
