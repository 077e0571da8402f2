// Command dentry inspects freedesktop desktop entry files.
//
// It parses the given file and prints the typed entry (or, with --raw, the
// unvalidated group/key mapping) as YAML on stdout. Parse failures are
// reported on stderr with a non-zero exit code.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/desktopentry"
	"github.com/0xalexb/desktopentry/logging"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

//nolint:gochecknoglobals // set via ldflags at build time.
var version = "dev"

// CLI is the command-line interface for dentry.
type CLI struct {
	Path     string           `arg:""             help:"Desktop entry file to inspect." type:"existingfile"`
	Raw      bool             `help:"Print the raw group/key mapping without validating it."`
	LogLevel string           `default:"info"     enum:"debug,info,warn,error"          help:"Log verbosity."`
	Version  kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("dentry"),
		kong.Description("Inspect freedesktop desktop entry files."),
		kong.Vars{"version": version},
	)

	slog.SetDefault(logging.New(os.Stderr, cli.LogLevel))

	ctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	var value any

	if cli.Raw {
		raw, err := desktopentry.ParseRawFile(cli.Path)
		if err != nil {
			return err
		}

		slog.Debug("parsed raw mapping", "path", cli.Path, "groups", len(raw))

		value = raw
	} else {
		entry, err := desktopentry.ParseFile(cli.Path)
		if err != nil {
			return err
		}

		slog.Debug("parsed entry", "path", cli.Path, "type", entry.Type())

		value = entry
	}

	out, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	fmt.Print(string(out))

	return nil
}
