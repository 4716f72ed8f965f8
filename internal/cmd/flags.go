package cmd

import (
	"fmt"

	"github.com/harrison/typesync/internal/config"
	"github.com/spf13/cobra"
)

// changedString returns a pointer to the flag value only when the user set it
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}

// loadConfig reads --config when given, otherwise .typesync.yaml in dir
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfigFromDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
