package checker

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/typesync/internal/dialect"
	"github.com/harrison/typesync/internal/display"
	"github.com/harrison/typesync/internal/fileutil"
)

// CheckSyntax runs the heuristic lint over text.
//
// The brace count covers the whole text, including comments and string
// literals. A mismatch is the only failure and skips the line scan. Lines
// that look like unterminated statements produce warnings, which never
// change the result.
func CheckSyntax(out io.Writer, text string, d *dialect.Dialect, opts ...Option) bool {
	o := buildOptions(opts)

	fmt.Fprintf(out, "\n=== %s syntax check ===\n", d.Label)

	open := strings.Count(text, "{")
	closed := strings.Count(text, "}")
	if open != closed {
		fmt.Fprintf(out, "%s brace mismatch: { %d, } %d\n", o.scheme.Glyph(false), open, closed)
		return false
	}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || d.IsComment(line) {
			continue
		}
		if strings.HasSuffix(line, "{") || strings.HasSuffix(line, "}") || strings.HasSuffix(line, "]") {
			continue
		}
		// The marker test sees the untrimmed line
		if !d.Suspicious(raw) {
			continue
		}
		if strings.HasSuffix(line, ";") || strings.HasSuffix(line, ",") {
			continue
		}
		fmt.Fprintf(out, "%s line %d may be missing a semicolon: %s...\n",
			o.scheme.Warn(display.GlyphWarn), i+1, preview(line))
	}

	fmt.Fprintf(out, "%s %s basic syntax check passed\n", o.scheme.Glyph(true), d.Label)
	return true
}

// CheckSyntaxFile reads path and runs CheckSyntax over its contents
func CheckSyntaxFile(out io.Writer, path string, d *dialect.Dialect, opts ...Option) (bool, error) {
	text, err := fileutil.ReadSource(path)
	if err != nil {
		return false, err
	}
	return CheckSyntax(out, text, d, opts...), nil
}
