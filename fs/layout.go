// Package fs lays out rendered article artifacts on the local filesystem.
package fs

import (
	"os"
	"path/filepath"
)

// Layout maps articles to artifact paths below Root:
//
//	<root>/<category>/<slug>_summary.pdf
//	<root>/<category>/<slug>.md
//	<root>/<category>/audio/<slug>.wav
type Layout struct {
	Root string
}

// NewLayout creates a Layout rooted at root.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// CategoryDir returns the directory holding a category's documents.
func (l Layout) CategoryDir(category string) string {
	return filepath.Join(l.Root, Slug(category))
}

// DocumentPath returns the PDF path for an article title.
func (l Layout) DocumentPath(category, title string) string {
	return filepath.Join(l.CategoryDir(category), Slug(title)+"_summary.pdf")
}

// MarkdownPath returns the markdown path for an article title.
func (l Layout) MarkdownPath(category, title string) string {
	return filepath.Join(l.CategoryDir(category), Slug(title)+".md")
}

// AudioPath returns the audio path for an article title with the given
// file extension, e.g. ".wav".
func (l Layout) AudioPath(category, title, ext string) string {
	return filepath.Join(l.CategoryDir(category), "audio", Slug(title)+ext)
}

// WriteFile writes data to path, creating parent directories as needed.
// The content is written to a temporary file in the same directory and
// renamed into place so readers never see a partial artifact.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
