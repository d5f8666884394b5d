package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single catalog item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: item id %q", domain.ErrInvalidInput, args[0])
		}

		item, err := gateway.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Title:  %s\n", item.Title)
		fmt.Printf("ID:     %d\n", item.ID)
		if names := genreNames(item.Genres); len(names) > 0 {
			fmt.Printf("Genres: %s\n", strings.Join(names, ", "))
		}
		if item.Rating != nil {
			fmt.Printf("Rating: %.1f\n", *item.Rating)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
