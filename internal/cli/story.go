package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ishaan812/gitstory/internal/config"
	"github.com/ishaan812/gitstory/internal/llm"
	"github.com/ishaan812/gitstory/internal/memory"
	"github.com/ishaan812/gitstory/internal/narrator"
	"github.com/ishaan812/gitstory/internal/tui"
)

var (
	storyMaxCommits  int
	storyTopFiles    int
	storyRecent      int
	storyProvider    string
	storyModel       string
	storyBaseURL     string
	storyTemperature float64
	storyPlain       bool
	storyInteractive bool
)

var storyCmd = &cobra.Command{
	Use:   "story [location]",
	Short: "Generate a narrated story of a repository's history",
	Long: `Extract commit records from a repository and narrate its journey,
one paragraph per commit.

Older commits are compacted into single-line summaries before being handed
to the model; the most recent ones (--recent) are passed in full detail.

Examples:
  gitstory story
  gitstory story ~/code/myproject --max-commits 100
  gitstory story https://github.com/user/repo.git --provider gemini
  gitstory story --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStory,
}

func init() {
	rootCmd.AddCommand(storyCmd)

	storyCmd.Flags().IntVar(&storyMaxCommits, "max-commits", 0, "Maximum commits to analyze (newest first)")
	storyCmd.Flags().IntVar(&storyTopFiles, "top-files", 0, "Per-commit cap on surfaced file entries")
	storyCmd.Flags().IntVar(&storyRecent, "recent", -1, "Recent commits passed in full detail")
	storyCmd.Flags().StringVar(&storyProvider, "provider", "", "LLM provider (openai, gemini, ollama)")
	storyCmd.Flags().StringVar(&storyModel, "model", "", "Model to use")
	storyCmd.Flags().StringVar(&storyBaseURL, "base-url", "", "Custom API base URL")
	storyCmd.Flags().Float64Var(&storyTemperature, "temperature", -1, "Sampling temperature")
	storyCmd.Flags().BoolVar(&storyPlain, "plain", false, "Print the story without markdown rendering")
	storyCmd.Flags().BoolVarP(&storyInteractive, "interactive", "i", false, "Browse commits and story in a TUI")
}

func runStory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	location := "."
	if len(args) > 0 {
		location = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	maxCommits := storyMaxCommits
	if maxCommits <= 0 {
		maxCommits = cfg.MaxCommits
	}
	topFiles := storyTopFiles
	if topFiles <= 0 {
		topFiles = cfg.TopFiles
	}
	recent := storyRecent
	if recent < 0 {
		recent = cfg.RecentDetailed
	}

	successColor := color.New(color.FgHiGreen)
	dimColor := color.New(color.FgHiBlack)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Extracting commit memory..."
	s.Color("cyan")
	s.Start()
	records, err := memory.Extract(location, maxCommits, topFiles)
	s.Stop()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No commits found in this repository; nothing to narrate.")
		return nil
	}
	successColor.Printf("  Extracted %d commits\n", len(records))
	VerboseLog("Records span %s to %s",
		records[0].Date.Format("2006-01-02"),
		records[len(records)-1].Date.Format("2006-01-02"))

	client, err := createLLMClient(cfg)
	if err != nil {
		return err
	}

	s.Suffix = " Generating story..."
	s.Start()
	story, err := narrator.New(client, IsVerbose()).GenerateStory(ctx, records, recent)
	s.Stop()
	if err != nil {
		return err
	}
	dimColor.Println("  Story generated")
	fmt.Println()

	if storyInteractive {
		return tui.RunStoryBrowser(records, story, recent)
	}

	if storyPlain {
		fmt.Println(story)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(story)
		return nil
	}
	rendered, err := renderer.Render(story)
	if err != nil {
		fmt.Println(story)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

// createLLMClient resolves provider, model, key, and temperature from flags,
// config, and environment. A missing credential surfaces here, before any
// request is made.
func createLLMClient(cfg *config.Config) (llm.Client, error) {
	selectedProvider := storyProvider
	if selectedProvider == "" {
		selectedProvider = cfg.DefaultProvider
	}
	selectedModel := storyModel
	if selectedModel == "" {
		selectedModel = cfg.DefaultModel
	}
	temperature := cfg.Temperature
	if storyTemperature >= 0 {
		temperature = storyTemperature
	}

	llmCfg := llm.Config{
		Provider:    llm.Provider(selectedProvider),
		Model:       selectedModel,
		BaseURL:     storyBaseURL,
		Temperature: temperature,
	}

	switch llmCfg.Provider {
	case llm.ProviderOpenAI:
		llmCfg.APIKey = cfg.GetAPIKey("openai")
	case llm.ProviderGemini:
		llmCfg.APIKey = cfg.GetAPIKey("gemini")
	case llm.ProviderOllama:
		if llmCfg.BaseURL == "" && cfg.OllamaBaseURL != "" {
			llmCfg.BaseURL = cfg.OllamaBaseURL
		}
		if llmCfg.Model == "" && cfg.OllamaModel != "" {
			llmCfg.Model = cfg.OllamaModel
		}
	}

	VerboseLog("Using provider %s, model %q, temperature %.2f", llmCfg.Provider, llmCfg.Model, llmCfg.Temperature)
	return llm.NewClient(llmCfg)
}
