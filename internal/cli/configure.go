package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ishaan812/gitstory/internal/config"
	"github.com/ishaan812/gitstory/internal/llm"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure GitStory settings",
	Long: `Configure the narration provider, API keys, and generation defaults.

Settings are stored in ` + "`~/.gitstory/config.json`" + `. API keys can also be
supplied via OPENAI_API_KEY / GEMINI_API_KEY environment variables.`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("configure requires an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	providers := llm.AvailableProviders()
	items := make([]string, len(providers))
	cursor := 0
	for i, p := range providers {
		items[i] = string(p)
		if string(p) == cfg.DefaultProvider {
			cursor = i
		}
	}

	providerSelect := promptui.Select{
		Label:     "Narration provider",
		Items:     items,
		CursorPos: cursor,
	}
	_, provider, err := providerSelect.Run()
	if err != nil {
		return fmt.Errorf("cancelled")
	}
	cfg.DefaultProvider = provider

	switch llm.Provider(provider) {
	case llm.ProviderOpenAI:
		key, err := promptAPIKey("OpenAI API key", cfg.OpenAIAPIKey)
		if err != nil {
			return err
		}
		cfg.OpenAIAPIKey = key
	case llm.ProviderGemini:
		key, err := promptAPIKey("Gemini API key", cfg.GeminiAPIKey)
		if err != nil {
			return err
		}
		cfg.GeminiAPIKey = key
	case llm.ProviderOllama:
		urlPrompt := promptui.Prompt{Label: "Ollama base URL", Default: cfg.OllamaBaseURL}
		baseURL, err := urlPrompt.Run()
		if err != nil {
			return fmt.Errorf("cancelled")
		}
		cfg.OllamaBaseURL = baseURL

		modelPrompt := promptui.Prompt{Label: "Ollama model", Default: cfg.OllamaModel}
		model, err := modelPrompt.Run()
		if err != nil {
			return fmt.Errorf("cancelled")
		}
		cfg.OllamaModel = model
	}

	modelPrompt := promptui.Prompt{Label: "Default model (empty for provider default)", Default: cfg.DefaultModel}
	model, err := modelPrompt.Run()
	if err != nil {
		return fmt.Errorf("cancelled")
	}
	cfg.DefaultModel = model

	tempPrompt := promptui.Prompt{
		Label:   "Sampling temperature",
		Default: strconv.FormatFloat(cfg.Temperature, 'f', -1, 64),
		Validate: func(input string) error {
			v, err := strconv.ParseFloat(input, 64)
			if err != nil || v < 0 {
				return fmt.Errorf("enter a non-negative number")
			}
			return nil
		},
	}
	tempStr, err := tempPrompt.Run()
	if err != nil {
		return fmt.Errorf("cancelled")
	}
	cfg.Temperature, _ = strconv.ParseFloat(tempStr, 64)

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	color.New(color.FgHiGreen).Printf("  Configuration saved to %s\n", config.GetConfigPath())
	return nil
}

func promptAPIKey(label, current string) (string, error) {
	if current != "" {
		label += " (set, enter to keep)"
	}
	prompt := promptui.Prompt{Label: label, Mask: '*'}
	key, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("cancelled")
	}
	if key == "" {
		return current, nil
	}
	return key, nil
}
