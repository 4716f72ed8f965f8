package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// ReadSource reads a text file and normalizes CRLF and lone CR line endings
// to LF, so captured bodies and line numbers do not depend on the platform
// the file was saved on.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return NormalizeNewlines(string(data)), nil
}

// NormalizeNewlines rewrites "\r\n" and "\r" as "\n"
func NormalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
