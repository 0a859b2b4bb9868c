package llm

import (
	"context"
	"fmt"
	"sync"

	"cv-parser-api/internal/config"
	"cv-parser-api/internal/logging"
	"cv-parser-api/pkg/models"
)

// Manager manages the completion-service provider and its lifecycle. When no
// API credential is configured it serves the fixed demo CV instead of making
// network calls.
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	mu       sync.RWMutex
	demoMode bool
}

// NewManager creates a new manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
	}
}

// Start initializes the manager and creates the provider. Absence of a
// credential is not an error: demo mode is activated with a warning.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	logger := logging.GetGlobalLogger()

	if m.config.IsDemoMode() {
		m.demoMode = true
		logger.Warn("LLM_API_KEY environment variable not set. Using demo data for responses.")
		return nil
	}

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}
	m.provider = provider

	logger.Info("LLM manager started", map[string]interface{}{
		"provider": provider.GetProviderName(),
		"model":    m.config.LLM.Model,
	})

	return nil
}

// Stop shuts down the manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	logging.GetGlobalLogger().Info("Stopping LLM manager")
	m.provider = nil
	return nil
}

// StructureCV produces a structured mapping for the extracted CV text. In
// demo mode the fixed example structure is returned regardless of the input.
func (m *Manager) StructureCV(ctx context.Context, cvText string) (models.StructuredCV, error) {
	m.mu.RLock()
	provider := m.provider
	demoMode := m.demoMode
	m.mu.RUnlock()

	if demoMode {
		return models.DemoCV(), nil
	}

	if provider == nil {
		return nil, fmt.Errorf("LLM manager not started or provider not available")
	}

	return provider.StructureCV(ctx, cvText)
}

// IsDemoMode reports whether the manager serves canned responses
func (m *Manager) IsDemoMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.demoMode
}

// GetProviderName returns the name of the current provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.demoMode {
		return "demo"
	}
	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}
