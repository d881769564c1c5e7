// Package scan lists candidate screenshot files in a queue directory.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound indicates the queue directory doesn't exist.
	ErrNotFound = errors.New("directory not found")

	// ErrNoImages indicates the directory holds no recognized image files.
	ErrNoImages = errors.New("no image files found")
)

// Scanner filters a directory listing down to image files.
type Scanner struct {
	extensions map[string]bool
	log        *slog.Logger
}

// New builds a scanner accepting the given extensions (dotted, any case).
func New(extensions []string, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}
	return &Scanner{extensions: exts, log: log}
}

// List returns the image filenames directly under dir, sorted by name.
// Subdirectories are not descended into and non-regular files are skipped.
func (s *Scanner) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !s.extensions[strings.ToLower(filepath.Ext(name))] {
			s.log.Debug("skipping non-image file", "name", name)
			continue
		}
		files = append(files, name)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}

	s.log.Info("scanned image queue", "dir", dir, "images", len(files))
	return files, nil
}
