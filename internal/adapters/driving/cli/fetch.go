package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/services"
	"github.com/marquee-labs/marquee-cli/internal/logger"
)

var (
	flagGenre    string
	flagPage     int
	flagPageSize int
	flagJSON     bool
)

func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagGenre, "genre", "g", "", "filter by genre tag")
	cmd.Flags().IntVarP(&flagPage, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&flagPageSize, "page-size", 0, "items per page (default from config)")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "print results as JSON")
}

// buildSpec assembles a fetch spec from flags and the optional search
// text, resolving the page size from config when the flag is unset.
func buildSpec(text string) (domain.FetchSpec, error) {
	pageSize := flagPageSize
	if pageSize <= 0 {
		pageSize = configStore.Config().PageSize
	}
	if pageSize <= 0 {
		pageSize = services.DefaultPageSize
	}

	var genre *domain.Genre
	if flagGenre != "" {
		g, ok := domain.ParseGenre(flagGenre)
		if !ok {
			return domain.FetchSpec{}, fmt.Errorf("%w: unknown genre %q", domain.ErrInvalidInput, flagGenre)
		}
		genre = &g
	}

	q := domain.QueryState{
		SettledText: strings.TrimSpace(text),
		Genre:       genre,
		Page:        flagPage,
		PageSize:    pageSize,
	}
	if q.Page < 1 {
		return domain.FetchSpec{}, fmt.Errorf("%w: page %d", domain.ErrInvalidPage, q.Page)
	}
	return q.Spec(), nil
}

// runFetch executes one fetch-and-verify round and prints the page.
func runFetch(cmd *cobra.Command, spec domain.FetchSpec) error {
	ctx := cmd.Context()
	source := services.NewCatalogSource(gateway)
	verifier := services.NewAssetVerifier(prober)

	logger.Debug("Fetching: strategy=%s page=%d page_size=%d", spec.Strategy, spec.Page, spec.PageSize)

	raw, err := source.Fetch(ctx, spec)
	if err != nil {
		return err
	}

	totalPages := domain.TotalPages(raw.Total, spec.PageSize)
	if raw.Total == 0 {
		if spec.Strategy == domain.StrategyBrowse {
			fmt.Println("The catalog is empty.")
		} else {
			fmt.Println("No results for this query.")
		}
		return nil
	}
	if spec.Page > totalPages {
		return fmt.Errorf("%w: page %d of %d", domain.ErrInvalidPage, spec.Page, totalPages)
	}

	verified := verifier.Verify(ctx, raw)
	if err := ctx.Err(); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(verified, spec.Page, totalPages)
	}
	printPage(verified, spec.Page, totalPages)
	return nil
}

func printPage(page domain.VerifiedPage, pageNum, totalPages int) {
	if len(page.Items) == 0 {
		fmt.Println("No displayable covers on this page.")
		return
	}
	for _, item := range page.Items {
		fmt.Println(formatItem(item))
	}
	fmt.Printf("\nPage %d of %d\n", pageNum, totalPages)
}

func formatItem(item domain.CatalogItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%6d  %s", item.ID, item.Title)
	if names := genreNames(item.Genres); len(names) > 0 {
		fmt.Fprintf(&b, "  [%s]", strings.Join(names, ", "))
	}
	if item.Rating != nil {
		fmt.Fprintf(&b, "  %.1f", *item.Rating)
	}
	return b.String()
}

func genreNames(set domain.GenreSet) []string {
	names := make([]string, 0, len(set))
	for g := range set {
		names = append(names, string(g))
	}
	sort.Strings(names)
	return names
}

type jsonItem struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
	Rating *float64 `json:"rating,omitempty"`
}

type jsonPage struct {
	Items      []jsonItem `json:"items"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
}

func printJSON(page domain.VerifiedPage, pageNum, totalPages int) error {
	out := jsonPage{Items: make([]jsonItem, 0, len(page.Items)), Page: pageNum, TotalPages: totalPages}
	for _, item := range page.Items {
		out.Items = append(out.Items, jsonItem{
			ID:     item.ID,
			Title:  item.Title,
			Genres: genreNames(item.Genres),
			Rating: item.Rating,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
