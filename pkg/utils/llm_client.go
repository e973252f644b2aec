package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionClientInterface is the single blocking external call of the
// itinerary pipeline: prompt in, raw model text out. The text is untrusted
// and handed to the recovery pipeline as-is.
type CompletionClientInterface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// NewCompletionClient creates a completion client for the configured
// provider. Groq is the default; Gemini is the free-tier alternative.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	switch strings.ToLower(provider) {
	case ProviderGroq:
		return NewGroqCompletionClient(apiKey, model), nil
	case ProviderGemini:
		client, err := NewGeminiCompletionClient(apiKey, model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s. Use 'groq' or 'gemini'", provider)
	}
}
