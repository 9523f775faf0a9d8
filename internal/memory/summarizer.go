package memory

import (
	"fmt"
	"strings"
)

// TruncationMarker is appended after a summary is cut to its length bound.
// The bound governs content; the marker is metadata on top of it, so a
// truncated summary is maxLen plus the marker's length.
const TruncationMarker = " [...]"

// Render produces the natural single-line description of the record:
//
//	Commit N by author on date [Category]: headline. Files changed (n):
//	name (purpose): +i/-d, ... Insertions: i, Deletions: d.
func (r CommitRecord) Render() string {
	files := make([]string, 0, len(r.ChangedFiles))
	for _, f := range r.ChangedFiles {
		files = append(files, fmt.Sprintf("%s (%s): +%d/-%d", f.FileName, f.Purpose, f.Insertions, f.Deletions))
	}

	return fmt.Sprintf("Commit %d by %s on %s [%s]: %s. Files changed (%d): %s. Insertions: %d, Deletions: %d.",
		r.Sequence,
		r.Author,
		r.Date.Format("2006-01-02"),
		r.Category,
		r.Headline,
		r.TotalFilesChanged,
		strings.Join(files, ", "),
		r.TotalInsertions,
		r.TotalDeletions,
	)
}

// Summarize compacts records into bounded single-line blurbs, one per record
// in the same order. Renderings longer than maxLen characters are cut to
// exactly maxLen and the truncation marker is appended.
func Summarize(records []CommitRecord, maxLen int) []string {
	summaries := make([]string, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, SummarizeRecord(r, maxLen))
	}
	return summaries
}

// SummarizeRecord bounds a single record's rendering. The cut is measured in
// runes so a multi-byte character is never split.
func SummarizeRecord(r CommitRecord, maxLen int) string {
	text := r.Render()
	runes := []rune(text)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + TruncationMarker
	}
	return text
}
