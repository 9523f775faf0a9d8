package memory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/ishaan812/gitstory/internal/git"
)

// Extract walks up to maxCommits commits reachable from HEAD and returns one
// CommitRecord per commit, oldest first, with contiguous 1-based sequence
// numbers. The traversal is read-only; a repository with no commits yields an
// empty sequence, not an error.
//
// ChangedFiles keeps the first topFiles entries in the order history reports
// them, NOT the largest by change volume. This positional selection matches
// the tool's established output and consumers may depend on which files it
// surfaces; do not "fix" it to sort by magnitude.
func Extract(location string, maxCommits, topFiles int) ([]CommitRecord, error) {
	repo, err := git.Open(location)
	if err != nil {
		return nil, err
	}

	head, err := repo.Git().Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			// Repository exists but has no commits yet.
			return []CommitRecord{}, nil
		}
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	iter, err := repo.Git().Log(&gogit.LogOptions{
		From:  head.Hash(),
		Order: gogit.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create log iterator: %w", err)
	}

	// Newest first as reported by history, capped at maxCommits.
	var commits []*object.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if len(commits) >= maxCommits {
			return storer.ErrStop
		}
		commits = append(commits, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}

	// Oldest first before sequence numbers are assigned.
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}

	records := make([]CommitRecord, 0, len(commits))
	for idx, c := range commits {
		records = append(records, newRecord(idx+1, c, topFiles))
	}
	return records, nil
}

func newRecord(sequence int, c *object.Commit, topFiles int) CommitRecord {
	message := strings.TrimSpace(c.Message)

	author := c.Author.Name
	if author == "" {
		author = "Unknown"
	}

	when := c.Committer.When.UTC()
	record := CommitRecord{
		Sequence: sequence,
		Author:   author,
		Date:     time.Date(when.Year(), when.Month(), when.Day(), 0, 0, 0, 0, time.UTC),
		Message:  message,
		Category: Classify(message),
		Headline: headline(message),
	}

	stats, err := c.Stats()
	if err != nil {
		// Unreadable diff (corrupt object, etc); keep the record with
		// zeroed stats rather than dropping the commit.
		return record
	}

	for i, fs := range stats {
		if i < topFiles {
			record.ChangedFiles = append(record.ChangedFiles, FileChangeEntry{
				FileName:   fs.Name,
				Purpose:    InferPurpose(fs.Name),
				Insertions: fs.Addition,
				Deletions:  fs.Deletion,
			})
		}
		record.TotalInsertions += fs.Addition
		record.TotalDeletions += fs.Deletion
	}
	record.TotalFilesChanged = len(stats)

	return record
}

func headline(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return strings.TrimSpace(message[:i])
	}
	return message
}
