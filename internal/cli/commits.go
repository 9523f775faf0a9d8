package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ishaan812/gitstory/internal/config"
	"github.com/ishaan812/gitstory/internal/memory"
	"github.com/ishaan812/gitstory/internal/narrator"
)

var (
	commitsMaxCommits int
	commitsTopFiles   int
	commitsRecent     int
	commitsSummaryLen int
)

// One printer per category, matching the tones the story UI uses.
var categoryColors = map[memory.Category]*color.Color{
	memory.CategorySetup:    color.New(color.FgHiGreen, color.Bold),
	memory.CategoryFeature:  color.New(color.FgHiBlue, color.Bold),
	memory.CategoryFix:      color.New(color.FgHiRed, color.Bold),
	memory.CategoryRefactor: color.New(color.FgHiYellow, color.Bold),
	memory.CategoryTest:     color.New(color.FgHiMagenta, color.Bold),
	memory.CategoryOther:    color.New(color.FgHiWhite, color.Bold),
}

var commitsCmd = &cobra.Command{
	Use:   "commits [location]",
	Short: "Show the extracted commit records",
	Long: `Extract and print the structured commit records for a repository,
oldest first. Older commits are shown as compact one-line summaries; the
most recent ones (--recent) are shown in full detail.

Examples:
  gitstory commits
  gitstory commits https://github.com/user/repo.git --max-commits 30
  gitstory commits --recent 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCommits,
}

func init() {
	rootCmd.AddCommand(commitsCmd)

	commitsCmd.Flags().IntVar(&commitsMaxCommits, "max-commits", 0, "Maximum commits to analyze (newest first)")
	commitsCmd.Flags().IntVar(&commitsTopFiles, "top-files", 0, "Per-commit cap on surfaced file entries")
	commitsCmd.Flags().IntVar(&commitsRecent, "recent", -1, "Recent commits shown in full detail")
	commitsCmd.Flags().IntVar(&commitsSummaryLen, "summary-length", narrator.DefaultSummaryLength, "Character bound per summarized commit")
}

func runCommits(cmd *cobra.Command, args []string) error {
	location := "."
	if len(args) > 0 {
		location = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	maxCommits := commitsMaxCommits
	if maxCommits <= 0 {
		maxCommits = cfg.MaxCommits
	}
	topFiles := commitsTopFiles
	if topFiles <= 0 {
		topFiles = cfg.TopFiles
	}
	recent := commitsRecent
	if recent < 0 {
		recent = cfg.RecentDetailed
	}

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
		fmt.Println("No commits found in this repository.")
		return nil
	}

	titleColor := color.New(color.FgHiCyan, color.Bold)
	dimColor := color.New(color.FgHiBlack)

	titleColor.Printf("  Commit records (%d, oldest first)\n\n", len(records))

	older, detailed := narrator.Partition(records, recent)

	for _, line := range memory.Summarize(older, commitsSummaryLen) {
		dimColor.Printf("  %s\n", line)
	}
	if len(older) > 0 {
		fmt.Println()
	}

	for _, r := range detailed {
		printDetailed(r)
	}

	return nil
}

func printDetailed(r memory.CommitRecord) {
	catColor, ok := categoryColors[r.Category]
	if !ok {
		catColor = categoryColors[memory.CategoryOther]
	}
	dimColor := color.New(color.FgHiBlack)

	catColor.Printf("  Commit %d [%s]: ", r.Sequence, r.Category)
	fmt.Printf("%s\n", r.Headline)
	dimColor.Printf("    %s | %s | %d files | +%s/-%s\n",
		r.Date.Format("2006-01-02"), r.Author, r.TotalFilesChanged,
		capCount(r.TotalInsertions), capCount(r.TotalDeletions))
	for _, f := range r.ChangedFiles {
		fmt.Printf("    %s (%s): +%d/-%d\n", f.FileName, f.Purpose, f.Insertions, f.Deletions)
	}
	fmt.Println()
}

// capCount keeps very large line counts readable in the listing.
func capCount(n int) string {
	if n > 1000 {
		return ">1000"
	}
	return strconv.Itoa(n)
}
