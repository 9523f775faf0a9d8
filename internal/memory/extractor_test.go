package memory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/ishaan812/gitstory/internal/git"
)

// initRepo creates a throwaway repository in a temp dir.
func initRepo(t *testing.T) (string, *gogit.Worktree) {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit() failed: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree() failed: %v", err)
	}
	return dir, wt
}

func commitFile(t *testing.T, wt *gogit.Worktree, dir, name, content, message string, when time.Time) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		t.Fatalf("Add(%q) failed: %v", name, err)
	}
	sig := &object.Signature{Name: "Alice", Email: "alice@example.com", When: when}
	if _, err := wt.Commit(message, &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("Commit(%q) failed: %v", message, err)
	}
}

func lines(n int) string {
	var s string
	for i := 0; i < n; i++ {
		s += fmt.Sprintf("line %d\n", i)
	}
	return s
}

func threeCommitRepo(t *testing.T) string {
	t.Helper()
	dir, wt := initRepo(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	commitFile(t, wt, dir, "README.md", lines(10), "Initial commit", base)
	commitFile(t, wt, dir, "auth.py", lines(50), "Add login feature", base.Add(24*time.Hour))
	commitFile(t, wt, dir, "auth.py", "patched\n"+lines(49), "Fix login bug", base.Add(48*time.Hour))
	return dir
}

func TestExtract_ThreeCommitScenario(t *testing.T) {
	records, err := Extract(threeCommitRepo(t), 50, 5)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}

	wantCategories := []Category{CategorySetup, CategoryFeature, CategoryFix}
	wantHeadlines := []string{"Initial commit", "Add login feature", "Fix login bug"}
	for i, r := range records {
		if r.Sequence != i+1 {
			t.Errorf("records[%d].Sequence = %d, want %d", i, r.Sequence, i+1)
		}
		if r.Category != wantCategories[i] {
			t.Errorf("records[%d].Category = %q, want %q", i, r.Category, wantCategories[i])
		}
		if r.Headline != wantHeadlines[i] {
			t.Errorf("records[%d].Headline = %q, want %q", i, r.Headline, wantHeadlines[i])
		}
		if r.Author != "Alice" {
			t.Errorf("records[%d].Author = %q, want %q", i, r.Author, "Alice")
		}
	}

	first := records[0]
	if first.Date != time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("records[0].Date = %v, want 2024-03-01 midnight UTC", first.Date)
	}
	if len(first.ChangedFiles) != 1 {
		t.Fatalf("len(records[0].ChangedFiles) = %d, want 1", len(first.ChangedFiles))
	}
	if first.ChangedFiles[0].FileName != "README.md" {
		t.Errorf("records[0] file = %q, want %q", first.ChangedFiles[0].FileName, "README.md")
	}
	if first.ChangedFiles[0].Purpose != "Documentation" {
		t.Errorf("records[0] purpose = %q, want %q", first.ChangedFiles[0].Purpose, "Documentation")
	}
	if first.TotalInsertions != 10 || first.TotalDeletions != 0 {
		t.Errorf("records[0] totals = +%d/-%d, want +10/-0", first.TotalInsertions, first.TotalDeletions)
	}

	third := records[2]
	if third.ChangedFiles[0].Purpose != "Python source code" {
		t.Errorf("records[2] purpose = %q, want %q", third.ChangedFiles[0].Purpose, "Python source code")
	}
	if third.TotalInsertions == 0 || third.TotalDeletions == 0 {
		t.Errorf("records[2] totals = +%d/-%d, want both non-zero", third.TotalInsertions, third.TotalDeletions)
	}
}

func TestExtract_MaxCommitsWindow(t *testing.T) {
	dir, wt := initRepo(t)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		commitFile(t, wt, dir, "notes.txt", lines(i), fmt.Sprintf("change %d", i), base.Add(time.Duration(i)*time.Hour))
	}

	records, err := Extract(dir, 2, 5)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	// The newest two commits, renumbered from 1 within the window.
	if records[0].Headline != "change 4" || records[1].Headline != "change 5" {
		t.Errorf("headlines = [%q, %q], want [change 4, change 5]", records[0].Headline, records[1].Headline)
	}
	if records[0].Sequence != 1 || records[1].Sequence != 2 {
		t.Errorf("sequences = [%d, %d], want [1, 2]", records[0].Sequence, records[1].Sequence)
	}
}

func TestExtract_TopFilesBound(t *testing.T) {
	dir, wt := initRepo(t)
	when := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	names := []string{"a.go", "b.md", "c.py", "d.json"}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(lines(3)), 0644); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
		if _, err := wt.Add(name); err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
	}
	sig := &object.Signature{Name: "Alice", Email: "alice@example.com", When: when}
	if _, err := wt.Commit("change many files", &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	records, err := Extract(dir, 50, 2)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	r := records[0]
	if len(r.ChangedFiles) != 2 {
		t.Errorf("len(ChangedFiles) = %d, want 2", len(r.ChangedFiles))
	}
	if r.TotalFilesChanged != 4 {
		t.Errorf("TotalFilesChanged = %d, want 4", r.TotalFilesChanged)
	}
	// Positional selection: the first entries as history reports them, not
	// the largest.
	if r.ChangedFiles[0].FileName != "a.go" || r.ChangedFiles[1].FileName != "b.md" {
		t.Errorf("surfaced files = [%q, %q], want [a.go, b.md]",
			r.ChangedFiles[0].FileName, r.ChangedFiles[1].FileName)
	}
	// Totals still cover every touched file.
	if r.TotalInsertions != 12 {
		t.Errorf("TotalInsertions = %d, want 12", r.TotalInsertions)
	}
}

func TestExtract_MultiLineMessage(t *testing.T) {
	dir, wt := initRepo(t)
	when := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	commitFile(t, wt, dir, "main.py", lines(5), "Add parser\n\nHandles nested expressions.\n", when)

	records, err := Extract(dir, 50, 5)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	r := records[0]
	if r.Headline != "Add parser" {
		t.Errorf("Headline = %q, want %q", r.Headline, "Add parser")
	}
	if r.Message != "Add parser\n\nHandles nested expressions." {
		t.Errorf("Message = %q, want trimmed multi-line message", r.Message)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	dir := threeCommitRepo(t)

	first, err := Extract(dir, 50, 5)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	second, err := Extract(dir, 50, 5)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs:\n first = %+v\nsecond = %+v", first, second)
	}
}

func TestExtract_EmptyRepository(t *testing.T) {
	dir, _ := initRepo(t)

	records, err := Extract(dir, 50, 5)
	if err != nil {
		t.Fatalf("Extract() on empty repo failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestExtract_NotARepository(t *testing.T) {
	_, err := Extract(t.TempDir(), 50, 5)
	if err == nil {
		t.Fatal("Extract() on non-repository succeeded, want error")
	}
	var notFound *git.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Extract() error = %v, want *git.NotFoundError", err)
	}
}
