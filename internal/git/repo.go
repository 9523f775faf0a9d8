package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// NotFoundError reports a location that is neither a valid local repository
// nor a clonable remote URL.
type NotFoundError struct {
	Location string
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("repository not found at %s: %v", e.Location, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Repository wraps an opened go-git repository with its resolved local path.
type Repository struct {
	repo *gogit.Repository
	path string
}

// Open returns a handle for history traversal. Remote http(s) URLs are
// cloned once into a cache directory derived from the URL basename and
// reused on later runs without fetching; a stale cache is accepted as the
// cost of not re-cloning. Local paths are opened in place.
//
// Concurrent first-time clones of the same URL race on the cache directory;
// callers wanting parallelism must serialize those themselves.
func Open(location string) (*Repository, error) {
	if isRemote(location) {
		return openRemote(location)
	}
	return openLocal(location)
}

func openLocal(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpen(absPath)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, &NotFoundError{Location: path, Err: err}
		}
		return nil, fmt.Errorf("failed to open git repository at %s: %w", absPath, err)
	}

	return &Repository{repo: repo, path: absPath}, nil
}

func openRemote(url string) (*Repository, error) {
	cachePath := CachePath(url)

	if _, err := os.Stat(cachePath); err == nil {
		return openLocal(cachePath)
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	repo, err := gogit.PlainCloneContext(context.Background(), cachePath, false, &gogit.CloneOptions{
		URL: url,
	})
	if err != nil {
		// Leave no half-cloned cache behind for the next run to trust.
		os.RemoveAll(cachePath)
		return nil, &NotFoundError{Location: url, Err: err}
	}

	return &Repository{repo: repo, path: cachePath}, nil
}

// CachePath returns the deterministic local clone path for a remote URL,
// keyed by the URL's final path segment with any ".git" suffix stripped.
func CachePath(url string) string {
	base := strings.TrimSuffix(filepath.Base(strings.TrimSuffix(url, "/")), ".git")
	return filepath.Join(os.TempDir(), "gitstory-repos", base)
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Path returns the resolved local filesystem path of the repository.
func (r *Repository) Path() string {
	return r.path
}

// Git exposes the underlying go-git repository.
func (r *Repository) Git() *gogit.Repository {
	return r.repo
}
