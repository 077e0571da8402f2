// Package desktopentry parses freedesktop.org desktop entry files into typed,
// validated records.
//
// Parsing happens in two strictly layered stages:
//   - ParseRaw tokenizes the INI-style text into a Raw mapping
//     (group name -> key -> value) without interpreting any value.
//   - Raw.Entry projects that mapping onto one of three typed variants
//     (Application, Link, Directory), discriminated by the Type key of the
//     "Desktop Entry" group.
//
// Both stages are available on their own: downstream code that only lists
// entries can stop at the raw mapping, while launchers consume the typed form.
//
// # Data Sources
//
// The Fetcher interface abstracts where the file bytes come from. Convenience
// wrappers cover the common cases:
//
//	entry, err := desktopentry.ParseFile("/usr/share/applications/editor.desktop")
//	entry, err := desktopentry.ParseFrom(fetcher)
//	entry, err := desktopentry.ParseReader(r)
//	entry, err := desktopentry.Parse(data)
//
// See fetcher/file for the file-based Fetcher implementation, and di for an
// Fx module that provides parsed entries to a dependency injection container.
//
// # Errors
//
// Every failure is classified as exactly one of two sentinels: ErrIO for read
// failures (the underlying cause stays reachable through errors.Is) and
// ErrFormat for violations of the grammar or the variant schema. A failed parse
// never returns a partial result.
//
// # Example
//
// A typical usage pattern:
//
//	entry, err := desktopentry.ParseFile(path)
//	if err != nil {
//	    return err
//	}
//
//	switch e := entry.(type) {
//	case desktopentry.Application:
//	    launch(e.Exec)
//	case desktopentry.Link:
//	    open(e.URL)
//	case desktopentry.Directory:
//	    // nothing to launch
//	}
package desktopentry
