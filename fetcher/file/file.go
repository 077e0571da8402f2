package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path given to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements desktopentry.Fetcher for file-based input.
// Unlike a config source read once per process, desktop entry files change as
// applications are installed and removed, so every Fetch reads the file fresh.
type Fetcher struct {
	filepath string
}

// New creates a Fetcher for the desktop entry file at fpath.
// The path is cleaned but not checked until Fetch is called.
func New(fpath string) *Fetcher {
	return &Fetcher{filepath: filepath.Clean(fpath)}
}

// Fetch reads and returns the file contents.
// Returns an error if the file cannot be read or if the path points to a directory.
func (f *Fetcher) Fetch() ([]byte, error) {
	stat, err := os.Stat(f.filepath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned by the constructor
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	return data, nil
}
