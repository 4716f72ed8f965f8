package cmd

import (
	"context"
	"fmt"

	"github.com/harrison/typesync/internal/config"
	"github.com/harrison/typesync/internal/logger"
	"github.com/harrison/typesync/internal/report"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check subcommand, which runs the full pipeline
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare shared type definitions and lint key source files",
		Long: `Run every check over a project:
  - Extract VideoInfo, SplitRequest and SplitType from the TypeScript and Rust type files
  - Verify each declaration exists on both sides
  - Brace-count and semicolon heuristics over the two type files,
    the Rust entry file and the TypeScript application root

Configuration is loaded from .typesync.yaml in the project root if present.
CLI flags override configuration file settings.

Examples:
  typesync check
  typesync check --root ./video-splitter
  typesync check --backend-entry src-tauri/src/main.rs --color never

Exit code: 0 if every check passes, 1 otherwise`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	cmd.Flags().String("config", "", "Path to config file (default: <root>/.typesync.yaml)")
	cmd.Flags().String("root", ".", "Project root that relative file paths are resolved against")
	cmd.Flags().String("frontend-types", "", "TypeScript type declaration file")
	cmd.Flags().String("backend-types", "", "Rust type declaration file")
	cmd.Flags().String("backend-entry", "", "Rust program entry file")
	cmd.Flags().String("frontend-root", "", "TypeScript application root file")
	cmd.Flags().String("color", "", "Color output: auto, always or never")
	cmd.Flags().String("log-level", "", "Diagnostic log level: trace, debug, info, warn, error")

	return cmd
}

// runCheck implements the check command logic
func runCheck(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")

	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}

	cfg.MergeWithFlags(config.FlagOverrides{
		FrontendTypes: changedString(cmd, "frontend-types"),
		BackendTypes:  changedString(cmd, "backend-types"),
		BackendEntry:  changedString(cmd, "backend-entry"),
		FrontendRoot:  changedString(cmd, "frontend-root"),
		LogLevel:      changedString(cmd, "log-level"),
		Color:         changedString(cmd, "color"),
	})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log.LogDebug(fmt.Sprintf("Project root: %s", root))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	summary, err := report.NewPipeline(cfg, root, cmd.OutOrStdout(), log).Run(ctx)
	if err != nil {
		return err
	}
	if !summary.Passed() {
		return fmt.Errorf("validation failed: %d check(s) failed", summary.FailedCount())
	}
	return nil
}
