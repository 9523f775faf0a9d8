package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient implements Client using Google's official Gemini Go SDK.
type GeminiClient struct {
	client      *genai.Client
	apiKey      string
	model       string
	temperature float64
}

func NewGeminiClient(apiKey, model string, temperature float64) *GeminiClient {
	// The SDK client is initialized lazily on first use.
	return &GeminiClient{
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
	}
}

func (c *GeminiClient) ensureClient(ctx context.Context) error {
	if c.client != nil {
		return nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  c.apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c.client = client
	return nil
}

func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	messages := []Message{
		{Role: "user", Content: prompt},
	}
	return c.ChatComplete(ctx, messages)
}

func (c *GeminiClient) ChatComplete(ctx context.Context, messages []Message) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}

	var contents []*genai.Content
	var systemInstruction *genai.Content

	for _, m := range messages {
		role := m.Role
		switch role {
		case "system":
			// Gemini carries system prompts as systemInstruction.
			systemInstruction = &genai.Content{
				Parts: []*genai.Part{
					genai.NewPartFromText(m.Content),
				},
			}
			continue
		case "assistant":
			role = "model"
		case "user":
		default:
			role = "user"
		}

		contents = append(contents, &genai.Content{
			Role: role,
			Parts: []*genai.Part{
				genai.NewPartFromText(m.Content),
			},
		})
	}

	if len(contents) == 0 {
		return "", fmt.Errorf("no user/assistant messages provided")
	}

	temperature := float32(c.temperature)
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	if systemInstruction != nil {
		config.SystemInstruction = systemInstruction
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return result.Text(), nil
}
