// Package report runs the full consistency check over a project and prints
// the consolidated pass/fail summary.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/harrison/typesync/internal/checker"
	"github.com/harrison/typesync/internal/config"
	"github.com/harrison/typesync/internal/dialect"
	"github.com/harrison/typesync/internal/display"
	"github.com/harrison/typesync/internal/extractor"
	"github.com/harrison/typesync/internal/fileutil"
	"github.com/harrison/typesync/internal/logger"
	"github.com/harrison/typesync/internal/models"
)

// Summary labels, in the order they are printed
const (
	LabelTypesMatch   = "Type definitions match"
	LabelFrontSyntax  = "TypeScript syntax"
	LabelBackSyntax   = "Rust syntax"
	LabelBackEntry    = "Backend entry syntax"
	LabelFrontendRoot = "Frontend root syntax"
)

// Pipeline is a single linear run: extract, compare, lint four files, summarize.
type Pipeline struct {
	Project      string
	Files        config.Files
	Declarations []models.Declaration

	out    io.Writer
	scheme *display.Scheme
	log    logger.Logger
}

// NewPipeline builds a pipeline from configuration. Relative file paths in
// cfg are resolved against root.
func NewPipeline(cfg *config.Config, root string, out io.Writer, log logger.Logger) *Pipeline {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Pipeline{
		Project:      cfg.Project,
		Files:        cfg.Files.Resolve(root),
		Declarations: cfg.Declarations,
		out:          out,
		scheme:       display.NewScheme(display.ShouldColor(out, cfg.Color)),
		log:          log,
	}
}

// lintTarget pairs a file with the dialect and summary label it is checked under
type lintTarget struct {
	label   string
	path    string
	dialect *dialect.Dialect
}

func (p *Pipeline) lintTargets() []lintTarget {
	return []lintTarget{
		{LabelFrontSyntax, p.Files.FrontendTypes, dialect.TypeScript},
		{LabelBackSyntax, p.Files.BackendTypes, dialect.Rust},
		{LabelBackEntry, p.Files.BackendEntry, dialect.Rust},
		{LabelFrontendRoot, p.Files.FrontendRoot, dialect.TypeScript},
	}
}

// Run executes every check and prints the report. Check failures are
// reported in the returned summary. All four files are read before anything
// is printed, so an unreadable input aborts the run with no partial report.
func (p *Pipeline) Run(ctx context.Context) (models.Summary, error) {
	var summary models.Summary

	sources, err := p.readSources(ctx)
	if err != nil {
		p.log.LogError(err.Error())
		return summary, err
	}

	fmt.Fprintf(p.out, "Validating %s...\n", p.Project)

	front := p.extract(p.Files.FrontendTypes, sources[p.Files.FrontendTypes], dialect.TypeScript)
	back := p.extract(p.Files.BackendTypes, sources[p.Files.BackendTypes], dialect.Rust)

	typesMatch := checker.Compare(p.out,
		checker.Side{Label: dialect.TypeScript.Short, Result: front},
		checker.Side{Label: dialect.Rust.Short, Result: back},
		p.Declarations, checker.WithScheme(p.scheme))
	summary.Add(LabelTypesMatch, typesMatch)

	for _, target := range p.lintTargets() {
		p.log.LogDebug(fmt.Sprintf("Checking %s as %s", target.path, target.dialect.Label))
		ok := checker.CheckSyntax(p.out, sources[target.path], target.dialect, checker.WithScheme(p.scheme))
		summary.Add(target.label, ok)
	}

	p.printSummary(summary)
	p.log.LogSummary(summary)
	return summary, nil
}

// readSources loads every input file, keyed by path
func (p *Pipeline) readSources(ctx context.Context) (map[string]string, error) {
	sources := make(map[string]string, 4)
	for _, target := range p.lintTargets() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := sources[target.path]; ok {
			continue
		}
		p.log.LogTrace(fmt.Sprintf("Reading %s", target.path))
		text, err := fileutil.ReadSource(target.path)
		if err != nil {
			return nil, err
		}
		sources[target.path] = text
	}
	return sources, nil
}

func (p *Pipeline) extract(path, text string, d *dialect.Dialect) models.ExtractionResult {
	p.log.LogDebug(fmt.Sprintf("Extracting %s declarations from %s", d.Label, path))
	result := extractor.Extract(text, d, p.Declarations)
	for _, decl := range p.Declarations {
		if !result.Has(decl.Name) {
			p.log.LogDebug(fmt.Sprintf("%s: no %s declaration named %s", path, decl.Kind, decl.Name))
		}
	}
	fmt.Fprintf(p.out, "Extracted %d %s type definition(s)\n", result.Len(), d.Label)
	return result
}

func (p *Pipeline) printSummary(summary models.Summary) {
	fmt.Fprintf(p.out, "\n=== Validation results ===\n")
	for _, o := range summary.Outcomes {
		fmt.Fprintf(p.out, "%s: %s\n", o.Label, p.scheme.Glyph(o.Passed))
	}

	if summary.Passed() {
		fmt.Fprintf(p.out, "\n%s\n", p.scheme.Pass("🎉 All checks passed!"))
	} else {
		fmt.Fprintf(p.out, "\n%s\n", p.scheme.Fail("❌ Problems found, fixes required."))
	}
}
