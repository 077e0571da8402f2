package desktopentry_test

import (
	"fmt"

	"github.com/0xalexb/desktopentry"
)

// Example demonstrates parsing a desktop entry into its typed variant.
func Example() {
	data := []byte(`[Desktop Entry]
Type=Application
Name=Text Editor
Exec=edit %f
Terminal=false
`)

	entry, err := desktopentry.Parse(data)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	app, ok := entry.(desktopentry.Application)
	if !ok {
		fmt.Println("not an application")

		return
	}

	fmt.Println(app.Name)
	fmt.Println(*app.Exec)
	fmt.Println(*app.Terminal)

	// Output:
	// Text Editor
	// edit %f
	// false
}

// ExampleParseRaw demonstrates the raw-level API, which stops before any
// schema validation.
func ExampleParseRaw() {
	data := []byte(`[Desktop Entry]
Type=Link
Name=Homepage
URL=http://example.com
`)

	raw, err := desktopentry.ParseRaw(data)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(raw["Desktop Entry"]["URL"])

	// Output:
	// http://example.com
}

// ExampleRaw_Entry demonstrates projecting a raw mapping onto a typed entry
// with a type switch over the three variants.
func ExampleRaw_Entry() {
	raw := desktopentry.Raw{
		"Desktop Entry": desktopentry.Group{
			"Type": "Link",
			"Name": "Homepage",
			"URL":  "http://example.com",
		},
	}

	entry, err := raw.Entry()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	switch e := entry.(type) {
	case desktopentry.Application:
		fmt.Println("application:", e.Name)
	case desktopentry.Link:
		fmt.Println("link:", e.URL)
	case desktopentry.Directory:
		fmt.Println("directory:", e.Name)
	}

	// Output:
	// link: http://example.com
}
