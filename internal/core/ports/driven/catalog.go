package driven

import (
	"context"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

// ListRequest describes one call to the catalog API's list endpoint.
type ListRequest struct {
	// Page is the 1-based page number. Ignored when PageSize is 0.
	Page int

	// PageSize is the requested page length. 0 requests the entire catalog
	// in one unbounded call.
	PageSize int

	// Text is the text query passed through to the server. May be empty.
	Text string
}

// ListResult is the catalog API's response to a list call.
type ListResult struct {
	// Items is the ordered page of items.
	Items []domain.CatalogItem

	// Total is the server-reported total count across all pages.
	Total int
}

// CatalogGateway lists and fetches items from the remote catalog API.
// Implementations must honour context cancellation: an abandoned call's
// result is discarded by the caller, but aborting the transport early is
// still worthwhile.
type CatalogGateway interface {
	// List fetches one page of items, or the entire catalog when
	// req.PageSize is 0. Fails with domain.ErrNetwork on transport
	// failure or a non-success response, and domain.ErrDecode when the
	// body cannot be interpreted.
	List(ctx context.Context, req ListRequest) (ListResult, error)

	// Get fetches a single item by id. Fails with domain.ErrNotFound
	// when the catalog has no such item.
	Get(ctx context.Context, id int) (domain.CatalogItem, error)
}
