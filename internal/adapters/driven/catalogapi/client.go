// Package catalogapi implements the CatalogGateway port over the remote
// catalog's JSON API.
package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driven"
	"github.com/marquee-labs/marquee-cli/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// requestsPerSecond throttles calls to the catalog API proactively.
	// The API publishes no rate-limit headers, so a fixed budget it is.
	requestsPerSecond = 5

	// requestBurst allows short bursts of rapid page flips.
	requestBurst = 10
)

// Ensure Client implements the interface.
var _ driven.CatalogGateway = (*Client)(nil)

// Client is an HTTP client for the catalog API's list and item endpoints.
type Client struct {
	baseURL string
	httpc   *http.Client
	limiter *rate.Limiter
}

// wireItem is the catalog API's JSON shape for one item.
type wireItem struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
	Rating *float64 `json:"rating"`
}

// listResponse is the catalog API's JSON shape for the list endpoint.
type listResponse struct {
	Items      []wireItem `json:"items"`
	TotalCount int        `json:"total_count"`
}

// NewClient creates a catalog API client. A nil httpc uses a default client
// with DefaultTimeout.
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: baseURL,
		httpc:   httpc,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// List fetches one page of items, or the entire catalog when req.PageSize
// is 0.
func (c *Client) List(ctx context.Context, req driven.ListRequest) (driven.ListResult, error) {
	q := url.Values{}
	q.Set("page_size", strconv.Itoa(req.PageSize))
	if req.PageSize > 0 {
		q.Set("page", strconv.Itoa(req.Page))
	}
	if req.Text != "" {
		q.Set("q", req.Text)
	}

	endpoint := c.baseURL + "/api/items?" + q.Encode()
	logger.Debug("Catalog API: GET %s", endpoint)

	var body listResponse
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return driven.ListResult{}, err
	}

	items := make([]domain.CatalogItem, 0, len(body.Items))
	for _, w := range body.Items {
		items = append(items, w.toDomain())
	}
	return driven.ListResult{Items: items, Total: body.TotalCount}, nil
}

// Get fetches a single item by id.
func (c *Client) Get(ctx context.Context, id int) (domain.CatalogItem, error) {
	endpoint := fmt.Sprintf("%s/api/items/%d", c.baseURL, id)
	logger.Debug("Catalog API: GET %s", endpoint)

	var w wireItem
	if err := c.getJSON(ctx, endpoint, &w); err != nil {
		return domain.CatalogItem{}, err
	}
	return w.toDomain(), nil
}

// getJSON performs a rate-limited GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: rate limit wait: %v", domain.ErrNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// Superseded or shut down; report the cancellation itself so
			// the pipeline can tell it apart from a real failure.
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, endpoint)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: catalog API returned %s", domain.ErrNetwork, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	return nil
}

// toDomain converts a wire item, dropping genre names outside the
// vocabulary.
func (w wireItem) toDomain() domain.CatalogItem {
	genres := make(domain.GenreSet, len(w.Genres))
	for _, name := range w.Genres {
		if g, ok := domain.ParseGenre(name); ok {
			genres[g] = true
		}
	}
	return domain.CatalogItem{
		ID:     w.ID,
		Title:  w.Title,
		Genres: genres,
		Rating: w.Rating,
	}
}
