// Package config loads typesync configuration from .typesync.yaml and
// merges command-line overrides on top of it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/typesync/internal/models"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project root
const FileName = ".typesync.yaml"

// Files lists the four source files a check run reads
type Files struct {
	// FrontendTypes holds the TypeScript type declarations
	FrontendTypes string `yaml:"frontend_types"`

	// BackendTypes holds the Rust type declarations
	BackendTypes string `yaml:"backend_types"`

	// BackendEntry is the Rust program entry file
	BackendEntry string `yaml:"backend_entry"`

	// FrontendRoot is the TypeScript application root component
	FrontendRoot string `yaml:"frontend_root"`
}

// Resolve joins every relative path onto root. Absolute paths are kept.
func (f Files) Resolve(root string) Files {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(root, p)
	}
	return Files{
		FrontendTypes: join(f.FrontendTypes),
		BackendTypes:  join(f.BackendTypes),
		BackendEntry:  join(f.BackendEntry),
		FrontendRoot:  join(f.FrontendRoot),
	}
}

// Config represents typesync configuration options
type Config struct {
	// Project is the name printed in the report heading
	Project string `yaml:"project"`

	// Files are the source files to check, relative to the project root
	Files Files `yaml:"files"`

	// Declarations are the type names compared between the two sides, in order
	Declarations []models.Declaration `yaml:"declarations"`

	// LogLevel sets the diagnostic logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color controls glyph coloring: auto, always or never
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config matching the video splitter layout
func DefaultConfig() *Config {
	return &Config{
		Project: "Video Splitter",
		Files: Files{
			FrontendTypes: "src/types/video.ts",
			BackendTypes:  "src/models/mod.rs",
			BackendEntry:  "src/main.rs",
			FrontendRoot:  "src/App.tsx",
		},
		Declarations: models.DefaultDeclarations(),
		LogLevel:     "info",
		Color:        "auto",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.Project != "" {
		cfg.Project = fileCfg.Project
	}
	if fileCfg.Files.FrontendTypes != "" {
		cfg.Files.FrontendTypes = fileCfg.Files.FrontendTypes
	}
	if fileCfg.Files.BackendTypes != "" {
		cfg.Files.BackendTypes = fileCfg.Files.BackendTypes
	}
	if fileCfg.Files.BackendEntry != "" {
		cfg.Files.BackendEntry = fileCfg.Files.BackendEntry
	}
	if fileCfg.Files.FrontendRoot != "" {
		cfg.Files.FrontendRoot = fileCfg.Files.FrontendRoot
	}
	// A declarations list replaces the defaults rather than extending them
	if len(fileCfg.Declarations) > 0 {
		cfg.Declarations = fileCfg.Declarations
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .typesync.yaml in the specified directory
// If the file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, FileName))
}

// FlagOverrides carries command-line values. Nil fields were not set.
type FlagOverrides struct {
	FrontendTypes *string
	BackendTypes  *string
	BackendEntry  *string
	FrontendRoot  *string
	LogLevel      *string
	Color         *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(flags FlagOverrides) {
	if flags.FrontendTypes != nil {
		c.Files.FrontendTypes = *flags.FrontendTypes
	}
	if flags.BackendTypes != nil {
		c.Files.BackendTypes = *flags.BackendTypes
	}
	if flags.BackendEntry != nil {
		c.Files.BackendEntry = *flags.BackendEntry
	}
	if flags.FrontendRoot != nil {
		c.Files.FrontendRoot = *flags.FrontendRoot
	}
	if flags.LogLevel != nil {
		c.LogLevel = *flags.LogLevel
	}
	if flags.Color != nil {
		c.Color = *flags.Color
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	paths := []struct {
		key   string
		value string
	}{
		{"files.frontend_types", c.Files.FrontendTypes},
		{"files.backend_types", c.Files.BackendTypes},
		{"files.backend_entry", c.Files.BackendEntry},
		{"files.frontend_root", c.Files.FrontendRoot},
	}
	for _, p := range paths {
		if p.value == "" {
			return fmt.Errorf("%s cannot be empty", p.key)
		}
	}

	if len(c.Declarations) == 0 {
		return fmt.Errorf("declarations cannot be empty")
	}
	seen := make(map[string]bool, len(c.Declarations))
	for _, decl := range c.Declarations {
		if err := decl.Validate(); err != nil {
			return err
		}
		if seen[decl.Name] {
			return fmt.Errorf("duplicate declaration %q", decl.Name)
		}
		seen[decl.Name] = true
	}

	return nil
}
