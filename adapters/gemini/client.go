package gemini

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Client implements the assistant gateway on top of the Gemini API
type Client struct {
	genai  *genai.Client
	logger *zap.Logger
}

// NewClient creates a gateway client. The API key is required; a missing
// key is a configuration error surfaced before any call is attempted.
func NewClient(ctx context.Context, apiKey string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		genai:  client,
		logger: logger,
	}, nil
}
