package checker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrison/typesync/internal/models"
	"github.com/stretchr/testify/assert"
)

func side(label string, bodies map[string]string) Side {
	return Side{Label: label, Result: models.NewExtractionResult(bodies)}
}

func TestCompare_AllPresent(t *testing.T) {
	front := side("TS", map[string]string{
		"VideoInfo":    " duration: number; ",
		"SplitRequest": " video_path: string; ",
		"SplitType":    "'time' | 'scenes'",
	})
	back := side("Rust", map[string]string{
		"VideoInfo":    " duration: u64, ",
		"SplitRequest": " video_path: PathBuf, ",
		"SplitType":    " Time, Scenes ",
	})

	var out bytes.Buffer
	ok := Compare(&out, front, back, models.DefaultDeclarations())

	assert.True(t, ok)
	expected := "=== Type definition comparison ===\n" +
		"✓ VideoInfo type definition present\n" +
		"  TS:  duration: number; ...\n" +
		"  Rust:  duration: u64, ...\n" +
		"✓ SplitRequest type definition present\n" +
		"  TS:  video_path: string; ...\n" +
		"  Rust:  video_path: PathBuf, ...\n" +
		"✓ SplitType type definition present\n" +
		"  TS: 'time' | 'scenes'...\n" +
		"  Rust:  Time, Scenes ...\n"
	assert.Equal(t, expected, out.String())
}

func TestCompare_MissingShortCircuits(t *testing.T) {
	front := side("TS", map[string]string{
		"VideoInfo":    "a",
		"SplitRequest": "b",
		"SplitType":    "c",
	})
	back := side("Rust", map[string]string{
		"VideoInfo": "a",
		"SplitType": "c",
	})

	var out bytes.Buffer
	ok := Compare(&out, front, back, models.DefaultDeclarations())

	assert.False(t, ok)
	output := out.String()
	assert.Contains(t, output, "✓ VideoInfo type definition present")
	assert.Contains(t, output, "✗ SplitRequest type definition missing")
	assert.NotContains(t, output, "SplitType", "names after the first miss are not checked")
}

func TestCompare_MissingOnFrontSide(t *testing.T) {
	front := side("TS", map[string]string{})
	back := side("Rust", map[string]string{"VideoInfo": "x"})

	var out bytes.Buffer
	ok := Compare(&out, front, back, models.DefaultDeclarations())

	assert.False(t, ok)
	assert.Contains(t, out.String(), "✗ VideoInfo type definition missing")
}

func TestCompare_PreviewTruncatedTo50Runes(t *testing.T) {
	long := strings.Repeat("é", 80)
	front := side("TS", map[string]string{"VideoInfo": long})
	back := side("Rust", map[string]string{"VideoInfo": "short"})

	var out bytes.Buffer
	ok := Compare(&out, front, back, models.DefaultDeclarations()[:1])

	assert.True(t, ok)
	assert.Contains(t, out.String(), "  TS: "+strings.Repeat("é", 50)+"...\n")
	assert.NotContains(t, out.String(), strings.Repeat("é", 51))
	assert.Contains(t, out.String(), "  Rust: short...\n")
}

func TestCompare_NoDeclarations(t *testing.T) {
	var out bytes.Buffer
	ok := Compare(&out, side("TS", nil), side("Rust", nil), nil)

	assert.True(t, ok)
	assert.Equal(t, "=== Type definition comparison ===\n", out.String())
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "", preview(""))
	assert.Equal(t, "abc", preview("abc"))
	assert.Equal(t, strings.Repeat("x", 50), preview(strings.Repeat("x", 50)))
	assert.Equal(t, strings.Repeat("x", 50), preview(strings.Repeat("x", 120)))
	assert.Equal(t, strings.Repeat("视", 50), preview(strings.Repeat("视", 60)))
}
