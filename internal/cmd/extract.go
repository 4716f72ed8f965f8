package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/harrison/typesync/internal/dialect"
	"github.com/harrison/typesync/internal/display"
	"github.com/harrison/typesync/internal/extractor"
	"github.com/harrison/typesync/internal/models"
	"github.com/spf13/cobra"
)

// NewExtractCommand creates the extract subcommand
func NewExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Show the declarations found in one source file",
		Long: `Run the declaration extractor over a single file and print what it found.

The dialect is inferred from the extension (.ts, .tsx, .rs) unless
--dialect is given. Useful for seeing why check reports a declaration
as missing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forced, _ := cmd.Flags().GetString("dialect")
			cfg, err := loadConfig(cmd, ".")
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return extractWithOutput(args[0], forced, cfg.Declarations, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("dialect", "", "Force a dialect: typescript or rust")
	cmd.Flags().String("config", "", "Path to config file (default: ./.typesync.yaml)")

	return cmd
}

// resolveDialect returns the forced dialect when set, otherwise infers one from path
func resolveDialect(path, forced string) (*dialect.Dialect, error) {
	if forced != "" {
		return dialect.Lookup(forced)
	}
	return dialect.ForPath(path)
}

// extractWithOutput extracts declarations from path and lists them in declaration order
func extractWithOutput(path, forced string, decls []models.Declaration, output io.Writer) error {
	d, err := resolveDialect(path, forced)
	if err != nil {
		return err
	}

	result, err := extractor.ExtractFile(path, d, decls)
	if err != nil {
		return err
	}

	scheme := display.NewScheme(display.ShouldColor(output, "auto"))
	fmt.Fprintf(output, "Extracted %d %s type definition(s) from %s\n", result.Len(), d.Label, path)
	for _, decl := range decls {
		body, ok := result.Get(decl.Name)
		if !ok {
			fmt.Fprintf(output, "%s %s (%s): not found\n", scheme.Glyph(false), decl.Name, decl.Kind)
			continue
		}
		fmt.Fprintf(output, "%s %s (%s, %d chars)\n", scheme.Glyph(true), decl.Name, decl.Kind, utf8.RuneCountInString(body))
		fmt.Fprintf(output, "%s\n", indentBody(body))
	}
	return nil
}

// indentBody trims surrounding blank lines and indents every line by four spaces
func indentBody(body string) string {
	lines := strings.Split(strings.Trim(body, "\r\n"), "\n")
	for i, line := range lines {
		lines[i] = "    " + strings.TrimRight(line, " \t\r")
	}
	return strings.Join(lines, "\n")
}
