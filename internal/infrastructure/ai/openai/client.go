package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Tomas-vilte/MatePR/internal/ai"
	"github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/httpclient"
)

var _ ports.TextGenerationProvider = (*Client)(nil)

const requestTemperature = 0.2

type (
	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatRequest struct {
		Model       string        `json:"model"`
		Messages    []chatMessage `json:"messages"`
		Temperature float64       `json:"temperature"`
	}

	chatChoice struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Text string `json:"text"`
	}

	chatResponse struct {
		Choices []chatChoice `json:"choices"`
	}

	errorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
)

// Client talks to any OpenAI-compatible chat-completions endpoint. The call
// is single-flight: no automatic retries, cancellation observed while
// awaiting the response.
type Client struct {
	httpClient httpclient.HTTPClient
}

func NewClient(httpClient httpclient.HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

func (c *Client) GenerateText(ctx context.Context, req models.GenerationRequest) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: ai.SystemPersona},
			{Role: "user", Content: req.Prompt},
		},
		Temperature: requestTemperature,
	})
	if err != nil {
		return "", errs.ErrGenerationFailed.WithError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.EndpointURL, bytes.NewReader(payload))
	if err != nil {
		return "", errs.ErrGenerationFailed.WithError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", errs.ErrGenerationFailed.WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.ErrGenerationFailed.WithError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.ErrGenerationFailed.WithContext("detail", failureMessage(resp.StatusCode, body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errs.ErrInvalidResponse.WithError(err)
	}

	if len(parsed.Choices) == 0 {
		return "", errs.ErrEmptyResponse
	}
	content := parsed.Choices[0].Message.Content
	if content == "" {
		content = parsed.Choices[0].Text
	}
	if content == "" {
		return "", errs.ErrEmptyResponse
	}

	return content, nil
}

// failureMessage prefers the provider's error.message, falling back to a
// generic status line.
func failureMessage(status int, body []byte) string {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return fmt.Sprintf("request failed (%d)", status)
}

// Factory registers the client under the "openai" identifier.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Name() string {
	return "openai"
}

func (f *Factory) ValidateConfig(cfg *config.Config) error {
	if cfg.AIAPIKey == "" {
		return errs.ErrProviderNotConfigured.WithContext("provider", f.Name())
	}
	if cfg.AIEndpoint == "" {
		return errs.ErrProviderNotConfigured.WithContext("provider", f.Name())
	}
	return nil
}

func (f *Factory) CreateGenerator(_ context.Context, _ *config.Config, _ *i18n.Translations) (ports.TextGenerationProvider, error) {
	return NewClient(nil), nil
}
