package memory

import "strings"

// classifyRules are evaluated in order, first match wins. A message that
// matches several rules is classified by the earliest one, so "Fix tests"
// is a Fix, not a Test.
var classifyRules = []struct {
	category Category
	keywords []string
}{
	{CategorySetup, []string{"init", "setup", "initial"}},
	{CategoryFeature, []string{"add", "feature", "implement"}},
	{CategoryFix, []string{"fix", "bug", "issue"}},
	{CategoryRefactor, []string{"refactor", "cleanup"}},
	{CategoryTest, []string{"test"}},
}

// Classify maps a free-text commit message to a Category. It never fails:
// anything unrecognized, including the empty string, is CategoryOther.
func Classify(message string) Category {
	msg := strings.ToLower(message)
	for _, rule := range classifyRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(msg, keyword) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
