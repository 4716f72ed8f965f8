package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/typesync/internal/config"
	"github.com/harrison/typesync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureFiles = map[string]string{
	"src/types/video.ts": `export interface VideoInfo {
  path: string;
  duration: number;
}

export interface SplitRequest {
  video_path: string;
  output_dir: string;
}

export type SplitType = 'time' | 'scenes' | 'manual';
`,
	"src/models/mod.rs": `use std::path::PathBuf;

pub struct VideoInfo {
    pub path: PathBuf,
    pub duration: f64,
}

pub struct SplitRequest {
    pub video_path: PathBuf,
    pub output_dir: PathBuf,
}

pub enum SplitType {
    Time,
    Scenes,
    Manual,
}
`,
	"src/main.rs": `fn main() {
    let app = build();
    app.run();
}
`,
	"src/App.tsx": `export default function App() {
  const title: string = "Video Splitter";
  return null;
}
`,
}

// writeProject lays out the fixture project, replacing any file named in overrides
func writeProject(t *testing.T, overrides map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range fixtureFiles {
		if override, ok := overrides[name]; ok {
			content = override
		}
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func runPipeline(t *testing.T, root string) (string, bool, error) {
	t.Helper()
	var out bytes.Buffer
	p := NewPipeline(config.DefaultConfig(), root, &out, logger.NewNoOpLogger())
	summary, err := p.Run(context.Background())
	return out.String(), summary.Passed(), err
}

func TestPipeline_AllChecksPass(t *testing.T) {
	root := writeProject(t, nil)

	var out bytes.Buffer
	p := NewPipeline(config.DefaultConfig(), root, &out, nil)
	summary, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.Passed())
	require.Len(t, summary.Outcomes, 5)
	assert.Equal(t, []string{
		LabelTypesMatch, LabelFrontSyntax, LabelBackSyntax, LabelBackEntry, LabelFrontendRoot,
	}, []string{
		summary.Outcomes[0].Label, summary.Outcomes[1].Label, summary.Outcomes[2].Label,
		summary.Outcomes[3].Label, summary.Outcomes[4].Label,
	})

	output := out.String()
	assert.Contains(t, output, "Validating Video Splitter...\n")
	assert.Contains(t, output, "Extracted 3 TypeScript type definition(s)\n")
	assert.Contains(t, output, "Extracted 3 Rust type definition(s)\n")
	assert.Contains(t, output, "✓ VideoInfo type definition present\n")
	assert.Contains(t, output, "✓ SplitRequest type definition present\n")
	assert.Contains(t, output, "✓ SplitType type definition present\n")
	assert.Contains(t, output, "  TS: 'time' | 'scenes' | 'manual'...\n")
	assert.Contains(t, output, "\n=== Validation results ===\n"+
		"Type definitions match: ✓\n"+
		"TypeScript syntax: ✓\n"+
		"Rust syntax: ✓\n"+
		"Backend entry syntax: ✓\n"+
		"Frontend root syntax: ✓\n"+
		"\n🎉 All checks passed!\n")
	assert.NotContains(t, output, "\x1b[", "buffers never get color")
}

func TestPipeline_MissingSplitRequestFailsOverall(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/models/mod.rs": `pub struct VideoInfo {
    pub duration: u64,
}

pub enum SplitType {
    Time,
}
`,
	})

	output, passed, err := runPipeline(t, root)
	require.NoError(t, err)

	assert.False(t, passed)
	assert.Contains(t, output, "Extracted 2 Rust type definition(s)\n")
	assert.Contains(t, output, "✗ SplitRequest type definition missing\n")
	assert.NotContains(t, output, "SplitType type definition")
	assert.Contains(t, output, "Type definitions match: ✗\n")
	assert.Contains(t, output, "Rust syntax: ✓\n")
	assert.Contains(t, output, "❌ Problems found, fixes required.")
}

func TestPipeline_BraceMismatchDoesNotAbort(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/main.rs": "fn main() {\n    run();\n",
	})

	output, passed, err := runPipeline(t, root)
	require.NoError(t, err)

	assert.False(t, passed)
	assert.Contains(t, output, "✗ brace mismatch: { 1, } 0\n")
	assert.Contains(t, output, "Backend entry syntax: ✗\n")
	// Checks after the failing one still run
	assert.Contains(t, output, "Frontend root syntax: ✓\n")
	assert.Contains(t, output, "Type definitions match: ✓\n")
}

func TestPipeline_WarningsDoNotFail(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/App.tsx": "export default function App() {\n  const size: number = 1\n  return null;\n}\n",
	})

	output, passed, err := runPipeline(t, root)
	require.NoError(t, err)

	assert.True(t, passed)
	assert.Contains(t, output, "⚠ line 2 may be missing a semicolon: const size: number = 1...\n")
	assert.Contains(t, output, "Frontend root syntax: ✓\n")
}

func TestPipeline_MissingFileAbortsWithoutReport(t *testing.T) {
	root := writeProject(t, nil)
	require.NoError(t, os.Remove(filepath.Join(root, "src", "App.tsx")))

	output, _, err := runPipeline(t, root)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "App.tsx")
	assert.Empty(t, output, "no partial report on file access failure")
}

func TestPipeline_Idempotent(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/App.tsx": "export default function App() {\n  const size: number = 1\n}\n",
	})

	first, firstPassed, err := runPipeline(t, root)
	require.NoError(t, err)
	second, secondPassed, err := runPipeline(t, root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstPassed, secondPassed)
}

func TestPipeline_CancelledContext(t *testing.T) {
	root := writeProject(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := NewPipeline(config.DefaultConfig(), root, &out, nil).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestPipeline_LogsToSeparateWriter(t *testing.T) {
	root := writeProject(t, nil)

	var out, logs bytes.Buffer
	p := NewPipeline(config.DefaultConfig(), root, &out, logger.NewConsoleLogger(&logs, "debug"))
	_, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "[DEBUG] Extracting TypeScript declarations from")
	assert.Contains(t, logs.String(), "[INFO] 5 checks: 5 passed, 0 failed")
	assert.NotContains(t, out.String(), "[DEBUG]")
}

func TestPipeline_ColorAlways(t *testing.T) {
	root := writeProject(t, nil)
	cfg := config.DefaultConfig()
	cfg.Color = "always"

	var out bytes.Buffer
	_, err := NewPipeline(cfg, root, &out, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "\x1b[32m✓")
}

func TestPipeline_CRLFMatchesLF(t *testing.T) {
	crlf := make(map[string]string, len(fixtureFiles))
	for name, content := range fixtureFiles {
		crlf[name] = strings.ReplaceAll(content, "\n", "\r\n")
	}

	want, wantPassed, err := runPipeline(t, writeProject(t, nil))
	require.NoError(t, err)
	got, gotPassed, err := runPipeline(t, writeProject(t, crlf))
	require.NoError(t, err)

	assert.True(t, gotPassed)
	assert.Equal(t, wantPassed, gotPassed)
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "\r")
}
