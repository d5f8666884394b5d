package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search the catalog by title text",
	Long: `Search lists a page of catalog items whose titles match the given text.
Combined with --genre, matches are additionally filtered to that genre.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := buildSpec(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return runFetch(cmd, spec)
	},
}

func init() {
	addFetchFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}
