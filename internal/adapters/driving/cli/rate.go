package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marquee-labs/marquee-cli/internal/adapters/driven/config/file"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driven/storage/sqlite"
	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/services"
)

var flagDataDir string

var rateCmd = &cobra.Command{
	Use:   "rate <id> <score>",
	Short: "Rate a catalog item from 0 to 10",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: item id %q", domain.ErrInvalidInput, args[0])
		}
		score, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("%w: score %q", domain.ErrInvalidInput, args[1])
		}

		store, err := sqlite.NewStore(flagDataDir)
		if err != nil {
			return fmt.Errorf("opening ratings store: %w", err)
		}
		defer store.Close()

		svc := services.NewRatingService(file.NewSessionStore(configStore), store, gateway)
		rating, err := svc.Rate(cmd.Context(), id, score)
		if err != nil {
			return err
		}

		fmt.Printf("Rated item %d: %.1f\n", rating.ItemID, rating.Score)
		return nil
	},
}

var ratingsCmd = &cobra.Command{
	Use:   "ratings",
	Short: "List your ratings, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := sqlite.NewStore(flagDataDir)
		if err != nil {
			return fmt.Errorf("opening ratings store: %w", err)
		}
		defer store.Close()

		svc := services.NewRatingService(file.NewSessionStore(configStore), store, gateway)
		ratings, err := svc.History(cmd.Context())
		if err != nil {
			return err
		}
		if len(ratings) == 0 {
			fmt.Println("No ratings yet.")
			return nil
		}
		for _, r := range ratings {
			fmt.Printf("%s  item %-6d  %.1f\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.ItemID, r.Score)
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{rateCmd, ratingsCmd} {
		cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.marquee/data)")
		rootCmd.AddCommand(cmd)
	}
}
