// Package di provides an Fx module that supplies parsed desktop entries to a
// dependency injection container.
//
// Each module is named; the name becomes both the Fx module name and the DI
// named tag under which the desktopentry.Entry and desktopentry.Raw values
// are provided:
//
//	app := fx.New(
//	    di.NewModule("editor", "/usr/share/applications/editor.desktop"),
//	    fx.Invoke(fx.Annotate(
//	        func(entry desktopentry.Entry) { ... },
//	        fx.ParamTags(`name:"editor"`),
//	    )),
//	)
//
// The data source defaults to the file at the given path; WithFetcher swaps
// in any other desktopentry.Fetcher implementation.
package di
