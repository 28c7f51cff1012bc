package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"countrypick/internal/ui/coordinator"
)

// ErrUnknownCode is returned when a code is not in the country list
var ErrUnknownCode = errors.New("unknown country code")

func newSelectionCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selection",
		Short: "Show the remembered selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := NewApp(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			snap, loadErr := app.LoadItems(cmd.Context())
			if loadErr == nil && snap.Committed != nil {
				fmt.Fprintln(out, snap.Committed.Label())
				return nil
			}

			code, ok, err := app.Store.Get(cmd.Context(), app.Config.Storage.Key)
			if err != nil {
				return fmt.Errorf("read selection: %w", err)
			}
			switch {
			case !ok:
				fmt.Fprintln(out, "No country selected")
			case loadErr != nil:
				// List unavailable; the raw code is all we know
				app.Logger.Warn("country list unavailable", "err", loadErr)
				fmt.Fprintln(out, code)
			default:
				fmt.Fprintf(out, "No country selected (stored code %q is not in the list)\n", code)
			}
			return nil
		},
	}

	cmd.AddCommand(newSelectionSetCommand(opts), newSelectionClearCommand(opts))
	return cmd
}

func newSelectionSetCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "set <code>",
		Short: "Select a country by its two-letter code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			if _, err := app.LoadItems(cmd.Context()); err != nil {
				return err
			}

			item, _, ok := app.Engine.Items().FindByCode(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownCode, args[0])
			}
			snap := app.Engine.Dispatch(cmd.Context(), coordinator.ItemClicked{Item: item})

			fmt.Fprintf(cmd.OutOrStdout(), "Selected %s\n", snap.Committed.Label())
			return nil
		},
	}
}

func newSelectionClearCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the remembered selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := NewApp(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			app.Engine.Dispatch(cmd.Context(), coordinator.ClearRequested{})
			if err := app.Store.Flush(cmd.Context()); err != nil {
				return fmt.Errorf("clear selection: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Selection cleared")
			return nil
		},
	}
}
