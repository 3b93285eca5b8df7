package gemini

import (
	"context"
	"fmt"

	"github.com/careerpilot/career-service/internal/config"
	"github.com/careerpilot/career-service/internal/models"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// Client handles integration with the Gemini text-generation API
type Client struct {
	client *genai.Client
	model  string
	log    *logrus.Logger
}

// NewClient initializes a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  cfg.GeminiModel,
		log:    log,
	}, nil
}

// Complete sends one rendered prompt to the model and returns the raw
// candidate text. Network, quota and malformed-response faults all
// surface as models.ErrCompletionFailed with the upstream cause attached
// for logging. There are no retries; every failure is terminal for its
// request.
func (c *Client) Complete(ctx context.Context, promptText string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(promptText, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrCompletionFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: response contains no candidate text", models.ErrCompletionFailed)
	}

	// Log the raw model response for debugging
	c.log.Debugf("gemini raw response: %s", text)

	return text, nil
}
