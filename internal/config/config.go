package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	DefaultProvider string  `json:"default_provider"`
	DefaultModel    string  `json:"default_model,omitempty"`
	Temperature     float64 `json:"temperature"`

	// API Keys
	OpenAIAPIKey string `json:"openai_api_key,omitempty"`
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`

	// Ollama config
	OllamaBaseURL string `json:"ollama_base_url,omitempty"`
	OllamaModel   string `json:"ollama_model,omitempty"`

	// Pipeline defaults
	MaxCommits     int `json:"max_commits"`
	TopFiles       int `json:"top_files"`
	RecentDetailed int `json:"recent_detailed"`
}

var configPath string

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		configPath = ".gitstory/config.json"
		return
	}
	configPath = filepath.Join(homeDir, ".gitstory", "config.json")
}

func GetConfigPath() string {
	return configPath
}

func Load() (*Config, error) {
	cfg := &Config{
		DefaultProvider: "openai",
		Temperature:     0.3,
		OllamaBaseURL:   "http://localhost:11434",
		OllamaModel:     "llama3.2",
		MaxCommits:      50,
		TopFiles:        5,
		RecentDetailed:  10,
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Save() error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) GetAPIKey(provider string) string {
	switch provider {
	case "openai":
		if c.OpenAIAPIKey != "" {
			return c.OpenAIAPIKey
		}
		return os.Getenv("OPENAI_API_KEY")
	case "gemini":
		if c.GeminiAPIKey != "" {
			return c.GeminiAPIKey
		}
		return os.Getenv("GEMINI_API_KEY")
	default:
		return ""
	}
}
