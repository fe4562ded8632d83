package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flashingpumpkin/ringtail/internal/config"
	"github.com/spf13/cobra"
)

// DefaultConfigTemplate is the commented template written by ringtail init.
const DefaultConfigTemplate = `# ringtail configuration
# RINGTAIL_* environment variables and command line flags override these values.

# Size of the output window. Only the most recent bytes of output are kept.
# Accepts plain byte counts or sizes such as "64KiB", "1MiB" or "1MB".
# capacity = "64KiB"

# Number of output lines kept by the terminal UI.
# max_lines = 10000

# Stop the command as soon as its recent output contains this text.
# until = "Listening on"

# Terminal UI colour theme: auto, dark or light.
# theme = "auto"
`

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a default .ringtail/config.toml configuration file in the current
directory, with every setting commented out.

If the configuration file already exists, the command will fail unless --force is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration file")
	return cmd
}

func runInit(cmd *cobra.Command, force bool) error {
	workingDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	configDir := filepath.Join(workingDir, config.ConfigDir)
	configPath := filepath.Join(configDir, "config.toml")

	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}
