// Package gemini implements ai.Explainer on top of the Google GenAI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/noah-isme/scholarship-match-api/internal/ai"
	"github.com/noah-isme/scholarship-match-api/internal/models"
)

const (
	defaultModel    = "gemini-2.5-flash"
	maxOutputTokens = 150
	temperature     = float32(0.7)
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client generates scholarship match explanations with a Gemini model.
type Client struct {
	models    contentGenerator
	modelName string
}

// New creates a Client for the Gemini API backend.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newClient(client.Models, model), nil
}

func newClient(models contentGenerator, model string) *Client {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Client{models: models, modelName: model}
}

// GenerateExplanation asks the model for a 2-3 sentence explanation. Provider
// failures are mapped onto the ai error taxonomy.
func (c *Client) GenerateExplanation(ctx context.Context, student *models.Student, scholarship *models.Scholarship) (string, error) {
	temp := temperature
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: ai.SystemInstruction}}},
		Temperature:       &temp,
		MaxOutputTokens:   maxOutputTokens,
	}

	resp, err := c.models.GenerateContent(ctx, c.modelName, genai.Text(ai.BuildPrompt(student, scholarship)), config)
	if err != nil {
		return "", classify(err)
	}

	text := responseText(resp)
	if text == "" {
		return ai.EmptyResponseExplanation, nil
	}
	return text, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
		// only the first candidate carrying text is used
		if builder.Len() > 0 {
			break
		}
	}
	return strings.TrimSpace(builder.String())
}

func classify(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return &ai.ProviderError{Err: err}
	}
	switch apiErr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ai.ErrUnauthorized, apiErr.Message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ai.ErrRateLimited, apiErr.Message)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ai.ErrUnavailable, apiErr.Message)
	default:
		return &ai.ProviderError{Status: apiErr.Code, Err: err}
	}
}
