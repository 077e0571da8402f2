package desktopentry

import (
	"fmt"
	"strings"
)

// Group holds the properties of a single named group as key/value pairs.
// Keys and values are stored exactly as written, with surrounding whitespace
// trimmed.
type Group map[string]string

// Raw is the untyped form of a desktop entry file: a mapping from group name
// to that group's properties. It is the output of the first parsing stage and
// the input of Raw.Entry.
type Raw map[string]Group

// ParseRaw tokenizes desktop entry text into a raw group/key/value mapping.
//
// The grammar is line oriented and processed in a single forward pass:
// empty lines and lines starting with '#' are skipped, a line of the form
// [Name] opens the group Name, and every other line must be a key=value pair
// belonging to the most recently opened group. Keys and values are trimmed of
// surrounding whitespace; a duplicate key within a group overwrites the
// earlier value, and re-opening a group name accumulates into the same group.
//
// No escaping, quoting, line continuation, or locale-suffixed key handling is
// performed.
func ParseRaw(data []byte) (Raw, error) {
	groups := Raw{}
	currentGroup := ""

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentGroup = line[1 : len(line)-1]

			continue
		}

		if currentGroup == "" {
			return nil, fmt.Errorf("%w: entry found outside of group", ErrFormat)
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%w: entry not key/value", ErrFormat)
		}

		group, ok := groups[currentGroup]
		if !ok {
			group = Group{}
			groups[currentGroup] = group
		}

		group[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return groups, nil
}
