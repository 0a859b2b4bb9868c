package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"cv-parser-api/internal/config"
	"cv-parser-api/internal/llm/processors"
	"cv-parser-api/internal/logging"
	"cv-parser-api/pkg/models"
	"cv-parser-api/pkg/utils"
)

// ClaudeProvider implements the provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
	}
}

// StructureCV sends the extracted CV text to Claude and decodes the returned
// completion. A single message exchange, no streaming, no retries.
func (cp *ClaudeProvider) StructureCV(ctx context.Context, cvText string) (models.StructuredCV, error) {
	startTime := time.Now()
	logger := logging.GetGlobalLogger()

	logger.Info("Starting CV structuring with Claude", map[string]interface{}{
		"text_length": len(cvText),
		"model":       cp.config.LLM.Model,
	})

	if cp.config.LLM.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cp.config.LLM.Timeout)
		defer cancel()
	}

	prompt := processors.BuildCVParserPrompt(cvText)

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		System: []anthropic.TextBlockParam{
			{Text: processors.SystemInstruction},
		},
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, utils.NewStructuringError(fmt.Sprintf("failed to call Claude API: %v", err))
	}

	if len(response.Content) == 0 {
		return nil, utils.NewStructuringError("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return nil, utils.NewStructuringError("no text content in Claude response")
	}

	cv, err := processors.DecodeCompletion(responseText)
	if err != nil {
		return nil, err
	}

	logger.Info("CV structuring completed", map[string]interface{}{
		"provider":        "claude",
		"processing_time": utils.FormatDuration(time.Since(startTime)),
		"sections":        len(cv),
	})

	return cv, nil
}

// GetProviderName returns the name of the provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
