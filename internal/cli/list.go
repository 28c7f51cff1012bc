package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"countrypick/internal/ui"
)

func newListCommand(opts *Options) *cobra.Command {
	var usePager bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the sorted country list",
		Long: `Print every country in display order, one per line, with its two- and
three-letter codes. The remembered selection is marked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := NewApp(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			snap, err := app.LoadItems(cmd.Context())
			if err != nil {
				return err
			}

			content := ui.RenderItemListing(snap.ActiveList, snap.Committed, app.Config.UI.ShowIcons)
			if usePager {
				if err := ui.NewPager(nil).Show(strings.NewReader(content)); err != nil {
					return fmt.Errorf("run pager: %w", err)
				}
				return nil
			}

			_, err = io.WriteString(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&usePager, "pager", false, "browse the list in a pager")
	return cmd
}
