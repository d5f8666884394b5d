package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driven"
)

// Ensure Assets implements the interface.
var _ driven.AssetProber = (*Assets)(nil)

// Assets is an in-memory asset prober: a probe succeeds iff the key was
// registered.
type Assets struct {
	mu   sync.RWMutex
	keys map[string]bool
}

// NewAssets creates a prober that resolves the given keys.
func NewAssets(keys ...string) *Assets {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return &Assets{keys: m}
}

// Add registers a key as resolvable.
func (a *Assets) Add(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.keys[key] = true
}

// Remove makes a key unresolvable.
func (a *Assets) Remove(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.keys, key)
}

// Probe reports whether the key resolves.
func (a *Assets) Probe(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.keys[key] {
		return fmt.Errorf("%w: no cover for %q", domain.ErrNotFound, key)
	}
	return nil
}
