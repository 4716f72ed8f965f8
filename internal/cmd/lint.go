package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/typesync/internal/checker"
	"github.com/harrison/typesync/internal/dialect"
	"github.com/harrison/typesync/internal/display"
	"github.com/harrison/typesync/internal/fileutil"
	"github.com/spf13/cobra"
)

// NewLintCommand creates the lint subcommand
func NewLintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint <file-or-directory>...",
		Short: "Run the brace/semicolon heuristics over source files",
		Long: `Run the heuristic syntax check over any TypeScript or Rust files.

Directories are scanned for .ts, .tsx and .rs files, skipping node_modules,
target, dist, build and hidden directories. --max-depth limits how deep the
scan goes (1 = the named directory only, 0 = unlimited). Files whose dialect
cannot be inferred are skipped with a warning unless --dialect is given.

Only a brace-count mismatch fails a file; missing-semicolon warnings are advisory.

Exit code: 0 if every file passes, 1 otherwise`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forced, _ := cmd.Flags().GetString("dialect")
			recursive, _ := cmd.Flags().GetBool("recursive")
			maxDepth, _ := cmd.Flags().GetInt("max-depth")
			colorMode, _ := cmd.Flags().GetString("color")
			if maxDepth < 0 {
				return fmt.Errorf("invalid --max-depth %d: must be 0 or greater", maxDepth)
			}
			scan := fileutil.ScanOptions{
				Extensions:  dialect.AllExtensions(),
				Recursive:   recursive,
				ExcludeDirs: fileutil.DefaultExcludeDirs,
				MaxDepth:    maxDepth,
			}
			return lintWithOutput(args, forced, scan, colorMode, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("dialect", "", "Force a dialect for every file: typescript or rust")
	cmd.Flags().Bool("recursive", true, "Descend into subdirectories")
	cmd.Flags().Int("max-depth", 0, "Limit directory depth (0 = unlimited, 1 = named directory only)")
	cmd.Flags().String("color", "auto", "Color output: auto, always or never")

	return cmd
}

// lintWithOutput lints every file named by paths, writing the report to output
func lintWithOutput(paths []string, forced string, scan fileutil.ScanOptions, colorMode string, output io.Writer) error {
	if forced != "" {
		if _, err := dialect.Lookup(forced); err != nil {
			return err
		}
	}

	scheme := display.NewScheme(display.ShouldColor(output, colorMode))

	files, errs := fileutil.ExpandPaths(paths, scan)
	for _, err := range errs {
		fmt.Fprintf(output, "%s %v\n", scheme.Glyph(false), err)
	}

	var skipped []string
	checked, failed := 0, len(errs)
	for _, file := range files {
		d, err := resolveDialect(file, forced)
		if err != nil {
			skipped = append(skipped, file)
			continue
		}

		fmt.Fprintf(output, "\nChecking %s", file)
		ok, err := checker.CheckSyntaxFile(output, file, d, checker.WithScheme(scheme))
		if err != nil {
			fmt.Fprintf(output, "\n%s %v\n", scheme.Glyph(false), err)
			failed++
			continue
		}
		checked++
		if !ok {
			failed++
		}
	}

	if len(skipped) > 0 {
		fmt.Fprintln(output)
		display.Warning{
			Title:      "Skipped files with unknown dialect",
			Message:    "Only .ts, .tsx and .rs files are checked",
			Files:      skipped,
			Suggestion: "Pass --dialect typescript or --dialect rust to check them",
		}.Display(output, scheme)
	}

	fmt.Fprintf(output, "\nChecked %d file(s), %d failed\n", checked, failed)

	if failed > 0 {
		return fmt.Errorf("lint failed: %d problem(s)", failed)
	}
	if checked == 0 {
		return fmt.Errorf("no TypeScript or Rust files found")
	}
	return nil
}
