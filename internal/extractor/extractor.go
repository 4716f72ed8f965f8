// Package extractor locates named type declarations in TypeScript and Rust
// source text by pattern search and returns their raw bodies.
package extractor

import (
	"github.com/harrison/typesync/internal/dialect"
	"github.com/harrison/typesync/internal/fileutil"
	"github.com/harrison/typesync/internal/models"
)

// Extract searches text for each declaration using the dialect's header
// patterns. Only the first occurrence of each name is captured. Names that
// do not match are left out of the result; no error is raised.
//
// Record bodies end at the first '}' after the opening brace, so a body
// with its own nested braces is truncated. TypeScript variants end at the
// first ';'.
func Extract(text string, d *dialect.Dialect, decls []models.Declaration) models.ExtractionResult {
	bodies := make(map[string]string, len(decls))
	for _, decl := range decls {
		match := d.Pattern(decl).FindStringSubmatch(text)
		if match == nil {
			continue
		}
		bodies[decl.Name] = match[1]
	}
	return models.NewExtractionResult(bodies)
}

// ExtractFile reads path and extracts declarations from its contents
func ExtractFile(path string, d *dialect.Dialect, decls []models.Declaration) (models.ExtractionResult, error) {
	text, err := fileutil.ReadSource(path)
	if err != nil {
		return models.ExtractionResult{}, err
	}
	return Extract(text, d, decls), nil
}
