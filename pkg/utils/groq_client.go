package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqCompletionClient talks to Groq through its OpenAI-compatible API.
type GroqCompletionClient struct {
	client *openai.Client
	model  string
}

func NewGroqCompletionClient(apiKey, model string) *GroqCompletionClient {
	if model == "" {
		model = "llama3-70b-8192"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL

	return &GroqCompletionClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *GroqCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.3,
		TopP:        0.9,
		MaxTokens:   8192,
	})
	if err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq: no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
