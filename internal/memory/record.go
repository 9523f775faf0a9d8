package memory

import "time"

// Category labels a commit by the intent signaled in its message.
type Category string

const (
	CategorySetup    Category = "Setup"
	CategoryFeature  Category = "Feature"
	CategoryFix      Category = "Fix"
	CategoryRefactor Category = "Refactor"
	CategoryTest     Category = "Test"
	CategoryOther    Category = "Other"
)

// CommitRecord is the structured representation of a single commit,
// produced once per extraction run and read-only afterwards.
type CommitRecord struct {
	// Sequence is the 1-based position in oldest-to-newest order. It is
	// stable only within one extraction run and one max-commits window.
	Sequence int

	Author   string
	Date     time.Time // calendar date of the commit timestamp, midnight UTC
	Message  string    // full trimmed commit message, possibly multi-line
	Category Category
	Headline string // first line of Message

	// ChangedFiles holds at most the configured top-files entries, in the
	// order history reports them.
	ChangedFiles []FileChangeEntry

	// Whole-commit totals. These cover every touched file, so they can
	// exceed the sums over ChangedFiles when the commit touched more files
	// than the top-files cap.
	TotalInsertions   int
	TotalDeletions    int
	TotalFilesChanged int
}

// FileChangeEntry describes one file touched by a commit.
type FileChangeEntry struct {
	FileName   string
	Purpose    string
	Insertions int
	Deletions  int
}
