package di

import "github.com/0xalexb/desktopentry"

// Option defines a function type for configuring a desktop entry module.
type Option func(*Config)

// WithFetcher overrides the file-based data source with a custom Fetcher.
// When set, the path argument of NewModule is ignored.
func WithFetcher(fetcher desktopentry.Fetcher) Option {
	return func(cfg *Config) {
		cfg.Fetcher = fetcher
	}
}
