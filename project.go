package desktopentry

import "fmt"

// GroupDesktopEntry is the name of the group every desktop entry file must
// contain. The typed projection consults only this group.
const GroupDesktopEntry = "Desktop Entry"

const keyType = "Type"

// Entry projects the raw mapping onto its typed variant.
//
// The "Desktop Entry" group must exist and must carry a Type key naming one of
// the three variants; the variant's required keys must be present. Any other
// group in the mapping, such as an action subgroup, is ignored. All violations
// are classified as ErrFormat.
func (r Raw) Entry() (Entry, error) {
	group, ok := r[GroupDesktopEntry]
	if !ok {
		return nil, fmt.Errorf("%w: desktop entry group missing", ErrFormat)
	}

	entryType, ok := group[keyType]
	if !ok {
		return nil, fmt.Errorf("%w: entry type missing", ErrFormat)
	}

	switch Type(entryType) {
	case TypeApplication:
		return group.application()
	case TypeLink:
		return group.link()
	case TypeDirectory:
		return group.directory()
	default:
		return nil, fmt.Errorf("%w: unknown entry type %q", ErrFormat, entryType)
	}
}

func (g Group) application() (Entry, error) {
	common, err := g.common()
	if err != nil {
		return nil, err
	}

	return Application{
		Common:               common,
		TryExec:              g.optional("TryExec"),
		Exec:                 g.optional("Exec"),
		Path:                 g.optional("Path"),
		Terminal:             g.boolean("Terminal"),
		Actions:              g.optional("Actions"),
		MimeType:             g.optional("MimeType"),
		Categories:           g.optional("Categories"),
		Keywords:             g.optional("Keywords"),
		StartupNotify:        g.boolean("StartupNotify"),
		StartupWMClass:       g.optional("StartupWMClass"),
		PrefersNonDefaultGPU: g.boolean("PrefersNonDefaultGPU"),
		SingleMainWindow:     g.boolean("SingleMainWindow"),
	}, nil
}

func (g Group) link() (Entry, error) {
	common, err := g.common()
	if err != nil {
		return nil, err
	}

	url, err := g.required("URL")
	if err != nil {
		return nil, err
	}

	return Link{
		Common: common,
		URL:    url,
	}, nil
}

func (g Group) directory() (Entry, error) {
	common, err := g.common()
	if err != nil {
		return nil, err
	}

	return Directory{Common: common}, nil
}

func (g Group) common() (Common, error) {
	name, err := g.required("Name")
	if err != nil {
		return Common{}, err
	}

	return Common{
		Version:     g.optional("Version"),
		Name:        name,
		GenericName: g.optional("GenericName"),
		NoDisplay:   g.boolean("NoDisplay"),
		Comment:     g.optional("Comment"),
		Icon:        g.optional("Icon"),
		Hidden:      g.boolean("Hidden"),
		OnlyShowIn:  g.optional("OnlyShowIn"),
		NotShowIn:   g.optional("NotShowIn"),
	}, nil
}

func (g Group) required(key string) (string, error) {
	value, ok := g[key]
	if !ok {
		return "", fmt.Errorf("%w: missing required key %q", ErrFormat, key)
	}

	return value, nil
}

func (g Group) optional(key string) *string {
	value, ok := g[key]
	if !ok {
		return nil
	}

	return &value
}

// boolean reads an optional boolean key. Only the exact literal "true" is
// truthy; any other value, including unparseable ones, yields false rather
// than an error. Callers must not treat a false result as "key absent";
// absence is the nil pointer.
func (g Group) boolean(key string) *bool {
	value, ok := g[key]
	if !ok {
		return nil
	}

	result := value == "true"

	return &result
}
