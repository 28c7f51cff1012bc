// Package cli wires the countrypick commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Options are the global flags shared by every command
type Options struct {
	ConfigPath string
	Source     string
	Storage    string
	LogLevel   string
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	root := &cobra.Command{
		Use:   "countrypick",
		Short: "Pick a country from a searchable list",
		Long: `countrypick - a keyboard and mouse driven country selector.

Type to search by name or ISO code, move through the suggestions with the
arrow keys and press Enter to select. The last selection is remembered
between runs.

Run without a subcommand to start the interactive selector.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/countrypick/config.toml)")
	flags.StringVar(&opts.Source, "source", "", "item source: http, file or embedded")
	flags.StringVar(&opts.Storage, "storage", "", "selection storage: sqlite, file or memory")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newListCommand(opts),
		newSearchCommand(opts),
		newSelectionCommand(opts),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	// Cancel on interrupt so loaders and storage shut down cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
