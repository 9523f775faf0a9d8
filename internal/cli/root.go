package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gitstory",
	Short: "GitStory - Narrate a repository's journey from its commit history",
	Long: `GitStory analyzes a git repository's commit history and turns it into
a narrated story of the project's evolution.

Point it at a local path or an http(s) clone URL. Remote repositories are
cloned once into a temp cache and reused on later runs.

Use 'gitstory commits' to inspect the extracted commit records and
'gitstory story' to generate the narrated journey.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func IsVerbose() bool {
	return verbose
}

func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}
