package llm

import (
	"context"
	"fmt"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the interface for text-generation operations.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	ChatComplete(ctx context.Context, messages []Message) (string, error)
}

// Provider represents a text-generation provider type.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// ConfigError reports a provider that cannot be used as configured, such as
// a missing API key. It is returned before any network call is attempted.
type ConfigError struct {
	Provider Provider
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is not configured: %s", e.Provider, e.Reason)
}

// Config holds configuration for creating a client. Model and Temperature
// apply to every request the client makes.
type Config struct {
	Provider    Provider
	Model       string
	BaseURL     string
	APIKey      string
	Temperature float64
}

// NewClient creates a client from config, validating credentials eagerly.
func NewClient(cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, &ConfigError{Provider: ProviderOpenAI, Reason: "API key is required; run 'gitstory configure' or set OPENAI_API_KEY"}
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		model := cfg.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		return NewOpenAIClient(baseURL, cfg.APIKey, model, cfg.Temperature), nil
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, &ConfigError{Provider: ProviderGemini, Reason: "API key is required; run 'gitstory configure' or set GEMINI_API_KEY"}
		}
		model := cfg.Model
		if model == "" {
			model = "gemini-2.5-flash"
		}
		return NewGeminiClient(cfg.APIKey, model, cfg.Temperature), nil
	case ProviderOllama:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		model := cfg.Model
		if model == "" {
			model = "llama3.2"
		}
		return NewOllamaClient(baseURL, model, cfg.Temperature), nil
	default:
		return nil, &ConfigError{Provider: cfg.Provider, Reason: "unknown provider"}
	}
}

// AvailableProviders returns supported providers.
func AvailableProviders() []Provider {
	return []Provider{ProviderOpenAI, ProviderGemini, ProviderOllama}
}
