// Package file provides a file-based Fetcher implementation for the
// desktopentry package.
//
// The Fetcher reads a single desktop entry file from the filesystem and
// returns its raw bytes for parsing. The file is read on every Fetch call,
// so long-lived holders always observe the current on-disk contents.
//
// Usage:
//
//	fetcher := file.New("/usr/share/applications/editor.desktop")
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Fetch returns an error if the file cannot be read or the path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
