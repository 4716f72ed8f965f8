package display

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Glyphs printed in front of status lines
const (
	GlyphPass = "✓"
	GlyphFail = "✗"
	GlyphWarn = "⚠"
)

// Scheme holds the colors for status glyphs.
// Green: success, Red: failure, Yellow: warnings.
type Scheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
}

// NewScheme creates a scheme. When enabled is false every Sprint call
// returns its input unchanged.
func NewScheme(enabled bool) *Scheme {
	s := &Scheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{s.success, s.fail, s.warn} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Glyph returns a colored ✓ or ✗
func (s *Scheme) Glyph(ok bool) string {
	if ok {
		return s.success.Sprint(GlyphPass)
	}
	return s.fail.Sprint(GlyphFail)
}

// Pass colors text green
func (s *Scheme) Pass(text string) string {
	return s.success.Sprint(text)
}

// Fail colors text red
func (s *Scheme) Fail(text string) string {
	return s.fail.Sprint(text)
}

// Warn colors text yellow
func (s *Scheme) Warn(text string) string {
	return s.warn.Sprint(text)
}

// ShouldColor decides whether output to w is colorized.
// mode is one of "auto", "always" or "never". In auto mode only *os.File
// writers attached to a terminal get color, and NO_COLOR is honored.
func ShouldColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
