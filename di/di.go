package di

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/desktopentry"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrNoSource is returned when neither a path nor a Fetcher is configured.
var ErrNoSource = errors.New("no desktop entry source configured")

// Config holds the configuration for a desktop entry module.
type Config struct {
	Path    string
	Fetcher desktopentry.Fetcher
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Path == "" && c.Fetcher == nil {
		return ErrNoSource
	}

	return nil
}

// NewModule creates an Fx module that parses the desktop entry file at path
// and provides both the typed Entry and the Raw mapping to the container.
// The name is used as both the Fx module name and the DI named tag for the
// provided values. Call multiple times with different names to provide
// several entries.
//
// Parsing happens lazily, when the container first asks for the value; a
// malformed or unreadable file surfaces as a DI error at that point.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, path string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	cfg := Config{
		Path:    path,
		Fetcher: nil,
	}

	for _, apply := range opts {
		apply(&cfg)
	}

	err := cfg.Validate()
	if err != nil {
		return fx.Error(err)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (desktopentry.Raw, error) {
					raw, rawErr := parseRaw(cfg)
					if rawErr != nil {
						slog.Error("failed to parse desktop entry", "name", name, "path", cfg.Path, "error", rawErr)

						return nil, rawErr
					}

					return raw, nil
				},
				fx.ResultTags(tag),
			),
		),
		fx.Provide(
			fx.Annotate(
				func(raw desktopentry.Raw) (desktopentry.Entry, error) {
					entry, entryErr := raw.Entry()
					if entryErr != nil {
						slog.Error("failed to project desktop entry", "name", name, "path", cfg.Path, "error", entryErr)

						return nil, entryErr
					}

					slog.Debug("desktop entry provided", "name", name, "type", entry.Type())

					return entry, nil
				},
				fx.ParamTags(tag),
				fx.ResultTags(tag),
			),
		),
	)
}

func parseRaw(cfg Config) (desktopentry.Raw, error) {
	if cfg.Fetcher != nil {
		return desktopentry.ParseRawFrom(cfg.Fetcher)
	}

	return desktopentry.ParseRawFile(cfg.Path)
}
