// Package memory provides in-memory implementations of the driven ports.
// They back the service tests and the offline demo catalog; nothing in
// this package touches the network or disk.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.CatalogGateway = (*Catalog)(nil)

// Catalog is an in-memory catalog gateway over a fixed item list. Text
// queries match case-insensitively against titles, mirroring the remote
// API's observable behaviour.
type Catalog struct {
	mu    sync.RWMutex
	items []domain.CatalogItem

	// Calls counts List invocations, letting tests assert that TagScan
	// never re-issues its full fetch on page changes.
	calls int
}

// NewCatalog creates a catalog over the given items.
func NewCatalog(items []domain.CatalogItem) *Catalog {
	copied := make([]domain.CatalogItem, len(items))
	copy(copied, items)
	return &Catalog{items: copied}
}

// List returns one page of matching items, or all matches when
// req.PageSize is 0.
func (c *Catalog) List(_ context.Context, req driven.ListRequest) (driven.ListResult, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := make([]domain.CatalogItem, 0, len(c.items))
	needle := strings.ToLower(req.Text)
	for _, item := range c.items {
		if needle == "" || strings.Contains(strings.ToLower(item.Title), needle) {
			matched = append(matched, item)
		}
	}

	if req.PageSize == 0 {
		return driven.ListResult{Items: matched, Total: len(matched)}, nil
	}

	start := (req.Page - 1) * req.PageSize
	if start < 0 || start >= len(matched) {
		return driven.ListResult{Items: nil, Total: len(matched)}, nil
	}
	end := start + req.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return driven.ListResult{Items: matched[start:end], Total: len(matched)}, nil
}

// Get returns the item with the given id.
func (c *Catalog) Get(_ context.Context, id int) (domain.CatalogItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.CatalogItem{}, fmt.Errorf("%w: item %d", domain.ErrNotFound, id)
}

// ListCalls returns how many List calls the catalog has served.
func (c *Catalog) ListCalls() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.calls
}
