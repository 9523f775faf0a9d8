package prompts

import (
	_ "embed"
	"strings"
)

//go:embed story_system.md
var storySystemPromptTemplate string

// StoryPreamble opens the prompt body handed to the narrator model;
// StorySuffix is the fixed closing instruction.
const (
	StoryPreamble = "Repository commit memory:"
	StorySuffix   = "Write a narrated story with one paragraph per commit."
)

// StorySystemPrompt returns the system prompt for narrative generation.
func StorySystemPrompt() string {
	return strings.TrimSpace(storySystemPromptTemplate)
}
