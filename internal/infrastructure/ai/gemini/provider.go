package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Tomas-vilte/MatePR/internal/ai"
	"github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
)

var _ ports.TextGenerationProvider = (*Provider)(nil)

// Provider adapts Gemini to the text-generation contract. It exists mostly to
// prove the provider abstraction holds beyond the OpenAI shape.
type Provider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewProvider(ctx context.Context, apiKey, modelName string) (*Provider, error) {
	if apiKey == "" {
		return nil, errs.ErrProviderNotConfigured.WithContext("provider", "gemini")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errs.ErrGenerationFailed.WithError(err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(ai.SystemPersona)},
	}

	return &Provider{client: client, model: model}, nil
}

func (p *Provider) GenerateText(ctx context.Context, req models.GenerationRequest) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", errs.ErrGenerationFailed.WithError(err)
	}

	text := extractText(resp)
	if text == "" {
		return "", errs.ErrEmptyResponse
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	return out
}

// Factory registers the provider under the "gemini" identifier.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Name() string {
	return "gemini"
}

func (f *Factory) ValidateConfig(cfg *config.Config) error {
	if cfg.AIAPIKey == "" {
		return errs.ErrProviderNotConfigured.WithContext("provider", f.Name())
	}
	return nil
}

func (f *Factory) CreateGenerator(ctx context.Context, cfg *config.Config, _ *i18n.Translations) (ports.TextGenerationProvider, error) {
	model := cfg.AIModel
	if model == "" {
		model = "gemini-1.5-flash"
	}
	provider, err := NewProvider(ctx, cfg.AIAPIKey, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create the Gemini provider: %w", err)
	}
	return provider, nil
}
