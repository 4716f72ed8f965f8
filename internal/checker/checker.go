// Package checker holds the two report-producing checks: the cross-dialect
// presence comparison and the heuristic brace/semicolon lint.
//
// Both write human-readable lines to an io.Writer and return a single bool.
// Neither returns an error for findings; a finding is only printed text.
package checker

import (
	"unicode/utf8"

	"github.com/harrison/typesync/internal/display"
)

// previewRunes is the length of body and line previews
const previewRunes = 50

// preview returns at most the first 50 runes of s
func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:previewRunes])
}

// Option configures a check
type Option func(*options)

type options struct {
	scheme *display.Scheme
}

// WithScheme colors glyphs with the given scheme
func WithScheme(s *display.Scheme) Option {
	return func(o *options) {
		o.scheme = s
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.scheme == nil {
		o.scheme = display.NewScheme(false)
	}
	return o
}
