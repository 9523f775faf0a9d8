package narrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ishaan812/gitstory/internal/llm"
	"github.com/ishaan812/gitstory/internal/memory"
	"github.com/ishaan812/gitstory/internal/prompts"
)

// ErrNoHistory is returned when there are no records to narrate. The
// external service is never invoked in that case.
var ErrNoHistory = errors.New("no commits to narrate")

// DefaultSummaryLength bounds each summarized commit line in the prompt.
const DefaultSummaryLength = 200

// Narrator turns a record sequence into a narrated story via an injected
// text-generation client. The client carries its own model and temperature;
// the narrator owns prompt assembly and the detailed/summarized split.
type Narrator struct {
	client  llm.Client
	verbose bool
}

// New creates a Narrator.
func New(client llm.Client, verbose bool) *Narrator {
	return &Narrator{client: client, verbose: verbose}
}

// Partition splits ordered records into the older head, which gets
// summarized, and the detailed tail of at most maxRecent records.
func Partition(records []memory.CommitRecord, maxRecent int) (older, recent []memory.CommitRecord) {
	if maxRecent < 0 {
		maxRecent = 0
	}
	split := len(records) - maxRecent
	if split < 0 {
		split = 0
	}
	return records[:split], records[split:]
}

// BuildPrompt assembles the bounded prompt body: fixed preamble, one line
// per commit (summarized for the older partition, full rendering for the
// recent one), and the fixed closing instruction.
func BuildPrompt(records []memory.CommitRecord, maxRecent int) string {
	older, recent := Partition(records, maxRecent)

	var b strings.Builder
	b.WriteString(prompts.StoryPreamble + "\n")
	for _, line := range memory.Summarize(older, DefaultSummaryLength) {
		b.WriteString(line + "\n")
	}
	for _, r := range recent {
		b.WriteString(r.Render() + "\n")
	}
	b.WriteString("\n" + prompts.StorySuffix)
	return b.String()
}

// GenerateStory narrates the record sequence. Records must be in extraction
// order (oldest first). Transport and service errors propagate unmodified;
// there is no retry.
func (n *Narrator) GenerateStory(ctx context.Context, records []memory.CommitRecord, maxRecent int) (string, error) {
	if len(records) == 0 {
		return "", ErrNoHistory
	}

	prompt := BuildPrompt(records, maxRecent)
	if n.verbose {
		fmt.Printf("[DEBUG] Narration prompt: %d commits, %d chars\n", len(records), len(prompt))
	}

	messages := []llm.Message{
		{Role: "system", Content: prompts.StorySystemPrompt()},
		{Role: "user", Content: prompt},
	}

	response, err := n.client.ChatComplete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate story: %w", err)
	}

	return strings.TrimSpace(response), nil
}
