package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"countrypick/internal/domain"
)

type searchResult struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	AltCode string `json:"altCode"`
	Flag    string `json:"flag,omitempty"`
}

func newSearchCommand(opts *Options) *cobra.Command {
	var (
		codesOnly bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Print the ranked suggestions for a query",
		Long: `Print the suggestions the selector would show for query: an exact code
match first, then names containing the query ordered by where the match
starts.

Examples:
  countrypick search fr          # France, then names containing "fr"
  countrypick search --codes g   # every code starting with G`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			if _, err := app.LoadItems(cmd.Context()); err != nil {
				return err
			}

			var results []domain.Item
			if codesOnly {
				results = app.Engine.Search.CodesWithPrefix(args[0])
			} else {
				results = app.Engine.Search.Suggest(args[0])
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			if len(results) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no matches for %q\n", args[0])
				return nil
			}
			for _, item := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", item.ShortCode, item.AltCode, item.DisplayName)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&codesOnly, "codes", false, "list codes starting with query instead of ranking")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func writeJSON(w io.Writer, items []domain.Item) error {
	results := make([]searchResult, 0, len(items))
	for _, item := range items {
		results = append(results, searchResult{
			Name:    item.DisplayName,
			Code:    item.ShortCode,
			AltCode: item.AltCode,
			Flag:    item.IconRef,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
