package desktopentry

import (
	"errors"
	"fmt"
	"io"

	filefetcher "github.com/0xalexb/desktopentry/fetcher/file"
)

// ErrIO is returned when the desktop entry data cannot be read.
// The underlying cause is wrapped and reachable through errors.Is.
var ErrIO = errors.New("desktop entry read error")

// ErrFormat is returned when the input violates the desktop entry grammar or
// the schema of the selected variant. The wrapped message describes the
// violation.
var ErrFormat = errors.New("desktop entry format error")

// Fetcher defines an interface for reading desktop entry data.
type Fetcher interface {
	Fetch() ([]byte, error)
}

// Parse tokenizes and projects the given desktop entry text in one call.
func Parse(data []byte) (Entry, error) {
	raw, err := ParseRaw(data)
	if err != nil {
		return nil, err
	}

	return raw.Entry()
}

// ParseFrom reads desktop entry data from the given Fetcher and parses it into
// a typed entry. Fetch failures are classified as ErrIO.
func ParseFrom(fetcher Fetcher) (Entry, error) {
	raw, err := ParseRawFrom(fetcher)
	if err != nil {
		return nil, err
	}

	return raw.Entry()
}

// ParseRawFrom reads desktop entry data from the given Fetcher and tokenizes
// it into a raw mapping. Fetch failures are classified as ErrIO.
func ParseRawFrom(fetcher Fetcher) (Raw, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return ParseRaw(data)
}

// ParseReader reads all desktop entry data from r and parses it into a typed
// entry. Read failures are classified as ErrIO.
func ParseReader(r io.Reader) (Entry, error) {
	raw, err := ParseRawReader(r)
	if err != nil {
		return nil, err
	}

	return raw.Entry()
}

// ParseRawReader reads all desktop entry data from r and tokenizes it into a
// raw mapping. Read failures are classified as ErrIO.
func ParseRawReader(r io.Reader) (Raw, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return ParseRaw(data)
}

// ParseFile reads the file at path and parses it into a typed entry.
// Read failures, including a missing file or a directory path, are classified
// as ErrIO.
func ParseFile(path string) (Entry, error) {
	raw, err := ParseRawFile(path)
	if err != nil {
		return nil, err
	}

	return raw.Entry()
}

// ParseRawFile reads the file at path and tokenizes it into a raw mapping.
// Read failures are classified as ErrIO.
func ParseRawFile(path string) (Raw, error) {
	return ParseRawFrom(filefetcher.New(path))
}
