package checker

import (
	"fmt"
	"io"

	"github.com/harrison/typesync/internal/models"
)

// Side is one half of a comparison: the extracted declarations and the
// prefix printed before their previews.
type Side struct {
	Label  string
	Result models.ExtractionResult
}

// Compare checks that every declaration is present on both sides, in the
// order given. For each present name it prints a confirmation line and a
// preview of each body. The first missing name prints a failure line and
// stops the comparison. Only presence is checked, not field equivalence.
func Compare(out io.Writer, front, back Side, decls []models.Declaration, opts ...Option) bool {
	o := buildOptions(opts)

	fmt.Fprintf(out, "=== Type definition comparison ===\n")

	for _, decl := range decls {
		frontBody, inFront := front.Result.Get(decl.Name)
		backBody, inBack := back.Result.Get(decl.Name)
		if !inFront || !inBack {
			fmt.Fprintf(out, "%s %s type definition missing\n", o.scheme.Glyph(false), decl.Name)
			return false
		}

		fmt.Fprintf(out, "%s %s type definition present\n", o.scheme.Glyph(true), decl.Name)
		fmt.Fprintf(out, "  %s: %s...\n", front.Label, preview(frontBody))
		fmt.Fprintf(out, "  %s: %s...\n", back.Label, preview(backBody))
	}

	return true
}
