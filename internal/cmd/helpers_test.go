package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var projectFiles = map[string]string{
	"src/types/video.ts": `export interface VideoInfo {
  path: string;
  duration: number;
}

export interface SplitRequest {
  video_path: string;
}

export type SplitType = 'time' | 'scenes';
`,
	"src/models/mod.rs": `pub struct VideoInfo {
    pub path: PathBuf,
    pub duration: f64,
}

pub struct SplitRequest {
    pub video_path: PathBuf,
}

pub enum SplitType {
    Time,
    Scenes,
}
`,
	"src/main.rs": "fn main() {\n    let code = run();\n    exit(code);\n}\n",
	"src/App.tsx": "export default function App() {\n  return null;\n}\n",
}

// writeTestProject creates a project tree under a temp dir, applying overrides.
// An empty override string removes the file.
func writeTestProject(t *testing.T, overrides map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range projectFiles {
		if override, ok := overrides[name]; ok {
			if override == "" {
				continue
			}
			content = override
		}
		writeFile(t, root, name, content)
	}
	for name, content := range overrides {
		if _, known := projectFiles[name]; !known {
			writeFile(t, root, name, content)
		}
	}
	return root
}

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// execute runs the root command with args and returns stdout, stderr and the error
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
