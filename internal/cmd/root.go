package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for typesync
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "typesync",
		Short: "Cross-check TypeScript and Rust type definitions",
		Long: `Typesync checks that the type definitions shared between a TypeScript
front end and a Rust back end exist on both sides, and runs a shallow
brace/semicolon lint over the project's key source files.

It is a presence check, not a type checker: declarations are found by
pattern search and compared by name only.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text;
		// main prints the returned error itself
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewExtractCommand())
	cmd.AddCommand(NewLintCommand())

	return cmd
}
