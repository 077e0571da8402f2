// Package logging provides structured JSON logging built on log/slog.
// It is used by the dentry CLI; the library packages themselves do not log.
package logging
