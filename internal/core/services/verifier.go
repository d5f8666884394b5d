package services

import (
	"context"
	"sync"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driven"
	"github.com/marquee-labs/marquee-cli/internal/logger"
)

// AssetVerifier filters a raw page down to the items whose cover asset
// actually resolves on the asset host.
type AssetVerifier struct {
	prober driven.AssetProber
}

// NewAssetVerifier creates a verifier over the given prober.
func NewAssetVerifier(prober driven.AssetProber) *AssetVerifier {
	return &AssetVerifier{prober: prober}
}

// Verify probes every item's cover concurrently, one probe per item, and
// returns the surviving items in their original order. Probe completion
// order never reorders the output. A title that sanitises to an empty asset
// key is dropped without a network call. Cancelling ctx abandons the page:
// the result is empty and must be discarded by the caller.
func (v *AssetVerifier) Verify(ctx context.Context, page domain.RawPage) domain.VerifiedPage {
	survived := make([]bool, len(page.Items))

	var wg sync.WaitGroup
	for i, item := range page.Items {
		key := domain.AssetKey(item.Title)
		if key == "" {
			logger.Debug("Verify: %q has no usable asset key, dropped", item.Title)
			continue
		}

		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			if err := v.prober.Probe(ctx, key); err != nil {
				logger.Debug("Verify: probe %q failed: %v", key, err)
				return
			}
			survived[i] = true
		}(i, key)
	}
	wg.Wait()

	if ctx.Err() != nil {
		// Superseded mid-verification. Probes raced the cancellation, so
		// the survived flags are unreliable; the caller drops this page.
		return domain.VerifiedPage{}
	}

	kept := make([]domain.CatalogItem, 0, len(page.Items))
	for i, item := range page.Items {
		if survived[i] {
			kept = append(kept, item)
		}
	}

	logger.Debug("Verify: %d of %d items displayable", len(kept), len(page.Items))
	return domain.VerifiedPage{Items: kept}
}
