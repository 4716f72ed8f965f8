// Package dialect describes the two source notations typesync compares:
// TypeScript on the front end and Rust on the back end.
//
// A Dialect carries everything that differs between the two, so the
// extractor and the syntax checker are written once and parameterized.
package dialect

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/harrison/typesync/internal/models"
)

// Dialect is the configuration record for one source notation
type Dialect struct {
	// Name is the canonical lowercase identifier used by flags and config
	Name string
	// Label is the human-readable name printed in section headers
	Label string
	// Short is the prefix printed in body previews (TS, Rust)
	Short string
	// Extensions lists the file extensions that map to this dialect
	Extensions []string
	// Aliases are alternative names accepted by Lookup
	Aliases []string
	// CommentOpeners are the line prefixes treated as comments by the lint pass
	CommentOpeners []string

	// recordTemplate and variantTemplate are regexp sources with one %s
	// for the quoted declaration name and one capture group for the body.
	recordTemplate  string
	variantTemplate string

	// suspicious reports whether an unterminated line looks like a statement
	suspicious func(line string) bool
}

// The body groups use [^}]+ / [^;]+, so a body stops at the first closing
// delimiter. Nested braces truncate the capture early; this is a known
// limitation of the shallow match.
var (
	TypeScript = &Dialect{
		Name:            "typescript",
		Label:           "TypeScript",
		Short:           "TS",
		Extensions:      []string{".ts", ".tsx"},
		Aliases:         []string{"ts", "tsx"},
		CommentOpeners:  []string{"//", "/*"},
		recordTemplate:  `(?s)(?:export\s+)?interface\s+%s\s*\{([^}]+)\}`,
		variantTemplate: `(?s)(?:export\s+)?type\s+%s\s*=\s*([^;]+);`,
		suspicious: func(line string) bool {
			return strings.Contains(line, ":")
		},
	}

	Rust = &Dialect{
		Name:            "rust",
		Label:           "Rust",
		Short:           "Rust",
		Extensions:      []string{".rs"},
		Aliases:         []string{"rs"},
		CommentOpeners:  []string{"//", "/*"},
		recordTemplate:  `(?s)(?:pub\s+)?struct\s+%s\s*\{([^}]+)\}`,
		variantTemplate: `(?s)(?:pub\s+)?enum\s+%s\s*\{([^}]+)\}`,
		suspicious: func(line string) bool {
			return strings.Contains(line, "let ") || strings.Contains(line, "=")
		},
	}
)

// All returns every known dialect
func All() []*Dialect {
	return []*Dialect{TypeScript, Rust}
}

// Lookup resolves a dialect by name or alias (case-insensitive)
func Lookup(name string) (*Dialect, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, d := range All() {
		if normalized == d.Name {
			return d, nil
		}
		for _, alias := range d.Aliases {
			if normalized == alias {
				return d, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown dialect %q, must be one of: typescript, rust", name)
}

// ForPath picks a dialect from the file extension
func ForPath(path string) (*Dialect, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, d := range All() {
		for _, e := range d.Extensions {
			if ext == e {
				return d, nil
			}
		}
	}
	return nil, fmt.Errorf("cannot infer dialect for %s: unsupported extension %q", path, ext)
}

// AllExtensions returns the extensions of every dialect, used for directory scans
func AllExtensions() []string {
	var exts []string
	for _, d := range All() {
		exts = append(exts, d.Extensions...)
	}
	return exts
}

// Pattern compiles the header pattern locating decl in this dialect.
// Capture group 1 is the declaration body.
func (d *Dialect) Pattern(decl models.Declaration) *regexp.Regexp {
	template := d.recordTemplate
	if decl.Kind == models.KindVariant {
		template = d.variantTemplate
	}
	return regexp.MustCompile(fmt.Sprintf(template, regexp.QuoteMeta(decl.Name)))
}

// IsComment reports whether a trimmed line opens a comment
func (d *Dialect) IsComment(trimmed string) bool {
	for _, opener := range d.CommentOpeners {
		if strings.HasPrefix(trimmed, opener) {
			return true
		}
	}
	return false
}

// Suspicious reports whether the line contains a statement marker for this
// dialect: a colon for TypeScript, a binding or assignment for Rust.
func (d *Dialect) Suspicious(line string) bool {
	if d.suspicious == nil {
		return false
	}
	return d.suspicious(line)
}

func (d *Dialect) String() string {
	return d.Label
}
