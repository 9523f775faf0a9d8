package memory

import "strings"

// purposeRules map filename suffixes to coarse content-type labels,
// evaluated in order with first match winning.
var purposeRules = []struct {
	suffixes []string
	label    string
}{
	{[]string{".py"}, "Python source code"},
	{[]string{".md"}, "Documentation"},
	{[]string{".gitignore"}, "Git ignore rules"},
	{[]string{".json"}, "Configuration/data file"},
	{[]string{".yml", ".yaml"}, "Configuration file"},
}

// InferPurpose maps a filename to a content-type label. Matching is
// case-insensitive on the suffix; unrecognized names get "Other".
func InferPurpose(filename string) string {
	name := strings.ToLower(filename)
	for _, rule := range purposeRules {
		for _, suffix := range rule.suffixes {
			if strings.HasSuffix(name, suffix) {
				return rule.label
			}
		}
	}
	return "Other"
}
