package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"cv-parser-api/internal/config"
	"cv-parser-api/internal/llm/processors"
	"cv-parser-api/internal/logging"
	"cv-parser-api/pkg/models"
	"cv-parser-api/pkg/utils"
)

// GeminiProvider implements the provider interface using the Gemini API
type GeminiProvider struct {
	client *genai.Client
	config *config.Config
}

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(cfg *config.Config) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.LLM.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: cfg,
	}, nil
}

// StructureCV sends the extracted CV text to Gemini and decodes the returned
// completion. A single request, no streaming, no retries.
func (gp *GeminiProvider) StructureCV(ctx context.Context, cvText string) (models.StructuredCV, error) {
	startTime := time.Now()
	logger := logging.GetGlobalLogger()

	logger.Info("Starting CV structuring with Gemini", map[string]interface{}{
		"text_length": len(cvText),
		"model":       gp.config.LLM.Model,
	})

	if gp.config.LLM.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, gp.config.LLM.Timeout)
		defer cancel()
	}

	prompt := processors.BuildCVParserPrompt(cvText)

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: processors.SystemInstruction}},
		},
		Temperature: genai.Ptr(gp.config.LLM.Temperature),
	}

	resp, err := gp.client.Models.GenerateContent(ctx, gp.config.LLM.Model, genai.Text(prompt), genConfig)
	if err != nil {
		return nil, utils.NewStructuringError(fmt.Sprintf("failed to call Gemini API: %v", err))
	}

	responseText := collectCandidateText(resp)
	if responseText == "" {
		return nil, utils.NewStructuringError("empty response from Gemini")
	}

	cv, err := processors.DecodeCompletion(responseText)
	if err != nil {
		return nil, err
	}

	logger.Info("CV structuring completed", map[string]interface{}{
		"provider":        "gemini",
		"processing_time": utils.FormatDuration(time.Since(startTime)),
		"sections":        len(cv),
	})

	return cv, nil
}

// collectCandidateText assembles the textual parts of every candidate
func collectCandidateText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(builder.String())
}

// GetProviderName returns the name of the provider
func (gp *GeminiProvider) GetProviderName() string {
	return "gemini"
}
