package main

import (
	"github.com/flashingpumpkin/ringtail/internal/util"
	"github.com/spf13/cobra"
)

// exitError carries the exit status of the child command out of RunE.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return "exit status " + util.IntToString(e.code)
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ringtail",
		Short: "Run commands and keep only their most recent output",
		Long: `Ringtail runs a command and keeps the most recent part of its output in a
fixed-size window, no matter how much the command prints.

While the command runs, a terminal UI shows the tail of the output and how
full the window is. When stdout is not a terminal, or with --minimal,
ringtail prints the final window once the command exits.

USAGE

    ringtail run [flags] -- <command> [args...]
    ringtail tail [flags] [file]

CONFIGURATION

Defaults can be set in .ringtail/config.toml (see 'ringtail init') and in
RINGTAIL_* environment variables, including from a .env file. Flags take
precedence over the environment, which takes precedence over the file.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newTailCmd())
	root.AddCommand(newInitCmd())

	return root
}
