package desktopentry

// Type identifies the variant a desktop entry resolves to. It mirrors the
// Type key of the "Desktop Entry" group.
type Type string

// The three entry variants defined by the desktop entry format.
const (
	TypeApplication Type = "Application"
	TypeLink        Type = "Link"
	TypeDirectory   Type = "Directory"
)

// Entry is the typed form of a desktop entry. It is a closed union: the only
// implementations are Application, Link, and Directory, selected by the Type
// key. Callers recover the concrete variant with a type switch.
type Entry interface {
	// Type reports which variant the entry is.
	Type() Type

	sealed()
}

// Common holds the presentation and visibility fields shared by every entry
// variant. Optional fields are pointers: a nil pointer means the key was
// absent from the file, which is distinct from a present key with a zero
// value.
type Common struct {
	Version     *string `yaml:"version,omitempty"`
	Name        string  `yaml:"name"`
	GenericName *string `yaml:"generic_name,omitempty"`
	NoDisplay   *bool   `yaml:"no_display,omitempty"`
	Comment     *string `yaml:"comment,omitempty"`
	Icon        *string `yaml:"icon,omitempty"`
	Hidden      *bool   `yaml:"hidden,omitempty"`
	OnlyShowIn  *string `yaml:"only_show_in,omitempty"`
	NotShowIn   *string `yaml:"not_show_in,omitempty"`
}

// Application describes a launchable application (Type=Application).
type Application struct {
	Common `yaml:",inline"`

	TryExec              *string `yaml:"try_exec,omitempty"`
	Exec                 *string `yaml:"exec,omitempty"`
	Path                 *string `yaml:"path,omitempty"`
	Terminal             *bool   `yaml:"terminal,omitempty"`
	Actions              *string `yaml:"actions,omitempty"`
	MimeType             *string `yaml:"mime_type,omitempty"`
	Categories           *string `yaml:"categories,omitempty"`
	Keywords             *string `yaml:"keywords,omitempty"`
	StartupNotify        *bool   `yaml:"startup_notify,omitempty"`
	StartupWMClass       *string `yaml:"startup_wm_class,omitempty"`
	PrefersNonDefaultGPU *bool   `yaml:"prefers_non_default_gpu,omitempty"`
	SingleMainWindow     *bool   `yaml:"single_main_window,omitempty"`
}

// Type implements Entry.
func (Application) Type() Type { return TypeApplication }

func (Application) sealed() {}

// Link describes a shortcut to a URL (Type=Link).
type Link struct {
	Common `yaml:",inline"`

	URL string `yaml:"url"`
}

// Type implements Entry.
func (Link) Type() Type { return TypeLink }

func (Link) sealed() {}

// Directory describes a menu directory (Type=Directory). It carries only the
// shared presentation and visibility fields.
type Directory struct {
	Common `yaml:",inline"`
}

// Type implements Entry.
func (Directory) Type() Type { return TypeDirectory }

func (Directory) sealed() {}
