// Package display provides the terminal formatting used by typesync reports.
//
// # Glyphs
//
// Scheme colors the pass/fail/warn glyphs. Color is decided once per writer:
//
//	scheme := display.NewScheme(display.ShouldColor(os.Stdout, "auto"))
//	fmt.Fprintf(out, "%s VideoInfo type definition present\n", scheme.Glyph(true))
//
// Color is only enabled for terminals, so output captured in files or
// buffers is plain and byte-stable between runs.
//
// # Warning Messages
//
// Display multi-line warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "Skipped files with unknown dialect",
//	    Files:      []string{"README.md"},
//	    Suggestion: "Pass --dialect typescript or --dialect rust to check them",
//	}
//	warning.Display(os.Stdout, scheme)
package display
