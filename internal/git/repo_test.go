package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
)

func TestOpen_LocalRepository(t *testing.T) {
	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, false); err != nil {
		t.Fatalf("PlainInit() failed: %v", err)
	}

	repo, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if repo.Git() == nil {
		t.Error("Git() = nil, want repository handle")
	}

	absDir, _ := filepath.Abs(dir)
	if repo.Path() != absDir {
		t.Errorf("Path() = %q, want %q", repo.Path(), absDir)
	}
}

func TestOpen_NotARepository(t *testing.T) {
	_, err := Open(t.TempDir())
	if err == nil {
		t.Fatal("Open() on plain directory succeeded, want error")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Open() error = %v, want *NotFoundError", err)
	}
	if !errors.Is(err, gogit.ErrRepositoryNotExists) {
		t.Errorf("Open() error does not wrap ErrRepositoryNotExists: %v", err)
	}
}

func TestOpen_MissingPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "no-such-dir"))
	if err == nil {
		t.Fatal("Open() on missing path succeeded, want error")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Open() error = %v, want *NotFoundError", err)
	}
}

func TestCachePath(t *testing.T) {
	tests := []struct {
		url  string
		base string
	}{
		{"https://github.com/user/myrepo.git", "myrepo"},
		{"https://github.com/user/myrepo", "myrepo"},
		{"https://github.com/user/myrepo/", "myrepo"},
		{"http://example.com/deep/path/tool.git", "tool"},
	}

	for _, tt := range tests {
		want := filepath.Join(os.TempDir(), "gitstory-repos", tt.base)
		if got := CachePath(tt.url); got != want {
			t.Errorf("CachePath(%q) = %q, want %q", tt.url, got, want)
		}
	}
}

func TestCachePath_Deterministic(t *testing.T) {
	url := "https://github.com/user/myrepo.git"
	if CachePath(url) != CachePath(url) {
		t.Error("CachePath() is not deterministic for the same URL")
	}
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{"https://github.com/user/repo.git", true},
		{"http://example.com/repo", true},
		{"/home/user/repo", false},
		{"./repo", false},
		{"httpdocs/repo", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isRemote(tt.location); got != tt.want {
			t.Errorf("isRemote(%q) = %v, want %v", tt.location, got, tt.want)
		}
	}
}
