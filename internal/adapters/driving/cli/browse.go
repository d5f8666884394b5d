package cli

import (
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog page by page",
	Long: `Browse lists a page of the catalog. With --genre the whole catalog is
scanned once and filtered locally, so page counts reflect the filtered set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		spec, err := buildSpec("")
		if err != nil {
			return err
		}
		return runFetch(cmd, spec)
	},
}

func init() {
	addFetchFlags(browseCmd)
	rootCmd.AddCommand(browseCmd)
}
