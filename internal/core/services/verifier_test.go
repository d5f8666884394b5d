package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-labs/marquee-cli/internal/adapters/driven/storage/memory"
	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

// countingProber records which keys were probed.
type countingProber struct {
	mu     sync.Mutex
	probed []string
	fail   map[string]bool
}

func (p *countingProber) Probe(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probed = append(p.probed, key)
	if p.fail[key] {
		return domain.ErrNotFound
	}
	return nil
}

func (p *countingProber) probedKeys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.probed))
	copy(out, p.probed)
	return out
}

func rawPageOf(titles ...string) domain.RawPage {
	items := make([]domain.CatalogItem, 0, len(titles))
	for i, title := range titles {
		items = append(items, domain.CatalogItem{ID: i + 1, Title: title})
	}
	return domain.RawPage{Items: items, Total: len(titles)}
}

func TestAssetVerifier_AllSurvive(t *testing.T) {
	assets := memory.NewAssets("Alien", "The Thing", "Halloween")
	v := NewAssetVerifier(assets)

	page := v.Verify(context.Background(), rawPageOf("Alien", "The Thing", "Halloween"))

	require.Len(t, page.Items, 3)
}

func TestAssetVerifier_DropsFailedProbes(t *testing.T) {
	assets := memory.NewAssets("Alien", "Halloween")
	v := NewAssetVerifier(assets)

	page := v.Verify(context.Background(), rawPageOf("Alien", "The Thing", "Halloween"))

	require.Len(t, page.Items, 2)
	assert.Equal(t, "Alien", page.Items[0].Title)
	assert.Equal(t, "Halloween", page.Items[1].Title)
}

func TestAssetVerifier_PreservesOrder(t *testing.T) {
	// Every probe succeeds; completion order must not leak into output order.
	titles := []string{"E", "D", "C", "B", "A"}
	assets := memory.NewAssets(titles...)
	v := NewAssetVerifier(assets)

	page := v.Verify(context.Background(), rawPageOf(titles...))

	require.Len(t, page.Items, 5)
	for i, title := range titles {
		assert.Equal(t, title, page.Items[i].Title)
	}
}

func TestAssetVerifier_EmptyAssetKeySkipsProbe(t *testing.T) {
	prober := &countingProber{}
	v := NewAssetVerifier(prober)

	page := v.Verify(context.Background(), rawPageOf("Alien", "!?#$%"))

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Alien", page.Items[0].Title)
	assert.Equal(t, []string{"Alien"}, prober.probedKeys(), "unkeyable titles must not hit the network")
}

func TestAssetVerifier_ProbesSanitisedKey(t *testing.T) {
	assets := memory.NewAssets("Alien 3")
	v := NewAssetVerifier(assets)

	page := v.Verify(context.Background(), rawPageOf("Alien: 3!"))

	require.Len(t, page.Items, 1)
}

func TestAssetVerifier_CancelledContextAbandonsPage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assets := memory.NewAssets("Alien", "The Thing")
	v := NewAssetVerifier(assets)

	page := v.Verify(ctx, rawPageOf("Alien", "The Thing"))

	assert.Empty(t, page.Items)
}

func TestAssetVerifier_EmptyPage(t *testing.T) {
	v := NewAssetVerifier(memory.NewAssets())

	page := v.Verify(context.Background(), domain.RawPage{})

	assert.Empty(t, page.Items)
}
