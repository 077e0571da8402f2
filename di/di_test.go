package di_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/desktopentry"
	"github.com/0xalexb/desktopentry/di"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type stubFetcher struct {
	data []byte
}

func (s *stubFetcher) Fetch() ([]byte, error) {
	return s.data, nil
}

func writeEntry(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "entry.desktop")

	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func TestNewModule_ProvidesEntry(t *testing.T) {
	t.Parallel()

	path := writeEntry(t, `[Desktop Entry]
Type=Application
Name=Editor
Exec=edit %f
`)

	var captured desktopentry.Entry

	app := fxtest.New(t,
		di.NewModule("editor", path),
		fx.Invoke(fx.Annotate(
			func(entry desktopentry.Entry) {
				captured = entry
			},
			fx.ParamTags(`name:"editor"`),
		)),
	)

	app.RequireStart()
	app.RequireStop()

	require.NotNil(t, captured)

	editor, ok := captured.(desktopentry.Application)
	require.True(t, ok)
	assert.Equal(t, "Editor", editor.Name)
}

func TestNewModule_ProvidesRaw(t *testing.T) {
	t.Parallel()

	path := writeEntry(t, `[Desktop Entry]
Type=Directory
Name=Utilities
`)

	var captured desktopentry.Raw

	app := fxtest.New(t,
		di.NewModule("utilities", path),
		fx.Invoke(fx.Annotate(
			func(raw desktopentry.Raw) {
				captured = raw
			},
			fx.ParamTags(`name:"utilities"`),
		)),
	)

	app.RequireStart()
	app.RequireStop()

	assert.Equal(t, "Directory", captured["Desktop Entry"]["Type"])
}

func TestNewModule_TwoEntries(t *testing.T) {
	t.Parallel()

	editorPath := writeEntry(t, `[Desktop Entry]
Type=Application
Name=Editor
`)
	linkPath := writeEntry(t, `[Desktop Entry]
Type=Link
Name=Homepage
URL=http://example.com
`)

	var editor, homepage desktopentry.Entry

	app := fxtest.New(t,
		di.NewModule("editor", editorPath),
		di.NewModule("homepage", linkPath),
		fx.Invoke(fx.Annotate(
			func(e, h desktopentry.Entry) {
				editor = e
				homepage = h
			},
			fx.ParamTags(`name:"editor"`, `name:"homepage"`),
		)),
	)

	app.RequireStart()
	app.RequireStop()

	assert.Equal(t, desktopentry.TypeApplication, editor.Type())
	assert.Equal(t, desktopentry.TypeLink, homepage.Type())
}

func TestNewModule_WithFetcher(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{data: []byte(`[Desktop Entry]
Type=Application
Name=Injected
`)}

	var captured desktopentry.Entry

	app := fxtest.New(t,
		di.NewModule("injected", "", di.WithFetcher(fetcher)),
		fx.Invoke(fx.Annotate(
			func(entry desktopentry.Entry) {
				captured = entry
			},
			fx.ParamTags(`name:"injected"`),
		)),
	)

	app.RequireStart()
	app.RequireStop()

	injected, ok := captured.(desktopentry.Application)
	require.True(t, ok)
	assert.Equal(t, "Injected", injected.Name)
}

func TestNewModule_EmptyName(t *testing.T) {
	t.Parallel()

	err := fx.ValidateApp(di.NewModule("", "entry.desktop"))

	require.Error(t, err)
	assert.ErrorIs(t, err, di.ErrEmptyName)
}

func TestNewModule_NoSource(t *testing.T) {
	t.Parallel()

	err := fx.ValidateApp(di.NewModule("editor", ""))

	require.Error(t, err)
	assert.ErrorIs(t, err, di.ErrNoSource)
}

func TestNewModule_MalformedEntry(t *testing.T) {
	t.Parallel()

	path := writeEntry(t, "Name=Editor\n")

	app := fx.New(
		fx.NopLogger,
		di.NewModule("broken", path),
		fx.Invoke(fx.Annotate(
			func(_ desktopentry.Entry) {},
			fx.ParamTags(`name:"broken"`),
		)),
	)

	err := app.Err()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry found outside of group")
}
