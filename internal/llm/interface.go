package llm

import (
	"context"

	"cv-parser-api/pkg/models"
)

// Provider defines the interface for completion-service providers
type Provider interface {
	// StructureCV sends the extracted CV text to the completion service and
	// decodes the returned completion into a structured mapping
	StructureCV(ctx context.Context, cvText string) (models.StructuredCV, error)

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
