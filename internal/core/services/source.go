package services

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driven"
	"github.com/marquee-labs/marquee-cli/internal/logger"
)

// scanCacheSize bounds the number of filtered full-catalog sets kept for
// TagScan. Page changes within a scan re-slice the cached set; only a text
// or genre change addresses a different entry.
const scanCacheSize = 8

// scanKey identifies one TagScan filtered set.
type scanKey struct {
	genre domain.Genre
	text  string
}

// CatalogSource executes the chosen fetch strategy against the catalog
// gateway, producing one RawPage per request.
type CatalogSource struct {
	gateway driven.CatalogGateway
	scans   *lru.Cache[scanKey, []domain.CatalogItem]
}

// NewCatalogSource creates a catalog source over the given gateway.
func NewCatalogSource(gateway driven.CatalogGateway) *CatalogSource {
	// Only errors on a non-positive size.
	scans, _ := lru.New[scanKey, []domain.CatalogItem](scanCacheSize)
	return &CatalogSource{
		gateway: gateway,
		scans:   scans,
	}
}

// Fetch executes spec's strategy and returns the raw page.
// Browse and Search are a single server-paginated call with the server's
// total trusted as-is. TagScan fetches the entire catalog once, filters by
// genre locally and paginates the filtered set locally.
func (s *CatalogSource) Fetch(ctx context.Context, spec domain.FetchSpec) (domain.RawPage, error) {
	logger.Debug("Fetch: strategy=%s text=%q page=%d size=%d", spec.Strategy, spec.Text, spec.Page, spec.PageSize)

	switch spec.Strategy {
	case domain.StrategyBrowse, domain.StrategySearch:
		return s.fetchServerPaginated(ctx, spec)
	case domain.StrategyTagScan:
		return s.fetchTagScan(ctx, spec)
	default:
		return domain.RawPage{}, fmt.Errorf("%w: unknown strategy %d", domain.ErrInvalidInput, spec.Strategy)
	}
}

// fetchServerPaginated requests exactly one page and trusts the server's
// total count.
func (s *CatalogSource) fetchServerPaginated(ctx context.Context, spec domain.FetchSpec) (domain.RawPage, error) {
	res, err := s.gateway.List(ctx, driven.ListRequest{
		Page:     spec.Page,
		PageSize: spec.PageSize,
		Text:     spec.Text,
	})
	if err != nil {
		return domain.RawPage{}, fmt.Errorf("list page %d: %w", spec.Page, err)
	}

	logger.Debug("Fetch: server page %d returned %d items, total %d", spec.Page, len(res.Items), res.Total)
	return domain.RawPage{Items: res.Items, Total: res.Total}, nil
}

// fetchTagScan serves a page from the locally filtered full catalog. The
// filtered set is cached per (genre, text), so changing only the page number
// never re-issues the full-catalog fetch.
func (s *CatalogSource) fetchTagScan(ctx context.Context, spec domain.FetchSpec) (domain.RawPage, error) {
	if spec.Genre == nil {
		return domain.RawPage{}, fmt.Errorf("%w: tagscan without a genre", domain.ErrInvalidInput)
	}

	key := scanKey{genre: *spec.Genre, text: spec.Text}
	filtered, ok := s.scans.Get(key)
	if !ok {
		all, err := s.gateway.List(ctx, driven.ListRequest{
			PageSize: 0, // unbounded: the entire catalog
			Text:     spec.Text,
		})
		if err != nil {
			return domain.RawPage{}, fmt.Errorf("full catalog scan: %w", err)
		}

		filtered = make([]domain.CatalogItem, 0, len(all.Items))
		for _, item := range all.Items {
			if item.Genres.Has(*spec.Genre) {
				filtered = append(filtered, item)
			}
		}
		s.scans.Add(key, filtered)
		logger.Debug("Fetch: scanned %d items, %d flagged %s", len(all.Items), len(filtered), *spec.Genre)
	}

	return domain.RawPage{
		Items: slicePage(filtered, spec.Page, spec.PageSize),
		Total: len(filtered),
	}, nil
}

// InvalidateScans drops all cached filtered sets. Called when the backing
// catalog is known to have changed.
func (s *CatalogSource) InvalidateScans() {
	s.scans.Purge()
}

// slicePage returns the 1-based page of items, clamped to the set's bounds.
func slicePage(items []domain.CatalogItem, page, size int) []domain.CatalogItem {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
