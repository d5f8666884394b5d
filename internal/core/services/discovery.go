package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driving"
	"github.com/marquee-labs/marquee-cli/internal/logger"
)

// DefaultPageSize is the page length used when none is configured.
const DefaultPageSize = 20

// Ensure DiscoveryPipeline implements the interface.
var _ driving.DiscoveryService = (*DiscoveryPipeline)(nil)

// DiscoveryConfig configures the pipeline.
type DiscoveryConfig struct {
	// Quiet is the debounce quiet period for text input.
	// Defaults to DefaultQuietPeriod.
	Quiet time.Duration

	// PageSize is the initial page length. Defaults to DefaultPageSize.
	PageSize int

	// Notify receives every published state snapshot. It is called with
	// the pipeline's mutex held so snapshots arrive in publish order;
	// implementations must not call back into the pipeline synchronously.
	Notify func(domain.PipelineState)
}

// DiscoveryPipeline owns the discovery inputs and sequences debounce, fetch
// and verification per input change. It is the only writer of the published
// PipelineState.
//
// Every input change bumps a monotonic generation counter and cancels the
// previous generation's context. A completion (fetch or probe set) whose
// generation no longer matches is dropped on arrival, so results only ever
// apply to the most recent request. Correctness never depends on the
// transport honouring cancellation.
type DiscoveryPipeline struct {
	mu       sync.Mutex
	source   *CatalogSource
	verifier *AssetVerifier
	debounce *Debouncer
	notify   func(domain.PipelineState)

	query  domain.QueryState
	state  domain.PipelineState
	gen    uint64
	cancel context.CancelFunc

	// knownPages is the total page count from the last completed fetch,
	// used to validate direct page jumps. -1 until a fetch completes.
	knownPages int
}

// NewDiscoveryPipeline creates the pipeline in the Idle state. Nothing is
// fetched until the first input change or Refresh call.
func NewDiscoveryPipeline(source *CatalogSource, verifier *AssetVerifier, cfg DiscoveryConfig) *DiscoveryPipeline {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	notify := cfg.Notify
	if notify == nil {
		notify = func(domain.PipelineState) {}
	}

	p := &DiscoveryPipeline{
		source:   source,
		verifier: verifier,
		notify:   notify,
		query: domain.QueryState{
			Page:     1,
			PageSize: pageSize,
		},
		state:      domain.PipelineState{Phase: domain.PhaseIdle},
		knownPages: -1,
	}
	p.debounce = NewDebouncer(cfg.Quiet, p.applySettled)
	return p
}

// SetText records a keystroke. The fetch only starts once the text settles
// after the quiet period; intermediate values never reach the catalog API.
func (p *DiscoveryPipeline) SetText(text string) {
	p.mu.Lock()
	p.query.RawText = text
	p.mu.Unlock()

	p.debounce.Input(text)
}

// Submit forces the pending text to settle immediately, skipping the
// remainder of the quiet period.
func (p *DiscoveryPipeline) Submit() {
	p.debounce.Flush()
}

// applySettled is the debouncer's emit edge.
func (p *DiscoveryPipeline) applySettled(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if text == p.query.SettledText {
		return
	}

	logger.Debug("Discovery: text settled to %q", text)
	p.query.SettledText = text
	p.query.Page = 1
	p.restartLocked()
}

// SetGenre selects a genre (nil clears it) and resets the page to 1.
func (p *DiscoveryPipeline) SetGenre(genre *domain.Genre) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if genreEqual(p.query.Genre, genre) {
		return
	}

	if genre != nil {
		g := *genre
		p.query.Genre = &g
	} else {
		p.query.Genre = nil
	}
	p.query.Page = 1
	p.restartLocked()
}

// SetPage jumps to a 1-based page. Jumps outside [1, totalPages] are
// rejected synchronously with no state transition. Re-selecting the current
// page re-runs the pipeline, which is the retry path after an error.
func (p *DiscoveryPipeline) SetPage(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n < 1 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPage, n)
	}
	if p.knownPages >= 0 && n > p.knownPages && n > 1 {
		return fmt.Errorf("%w: %d of %d", domain.ErrInvalidPage, n, p.knownPages)
	}

	p.query.Page = n
	p.restartLocked()
	return nil
}

// SetPageSize changes the page length and resets the page to 1.
func (p *DiscoveryPipeline) SetPageSize(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n < 1 {
		return fmt.Errorf("%w: page size %d", domain.ErrInvalidInput, n)
	}
	if n == p.query.PageSize {
		return nil
	}

	p.query.PageSize = n
	p.query.Page = 1
	p.restartLocked()
	return nil
}

// Refresh re-runs the pipeline with the current inputs.
func (p *DiscoveryPipeline) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.restartLocked()
}

// State returns the current published state.
func (p *DiscoveryPipeline) State() domain.PipelineState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Query returns a snapshot of the current inputs.
func (p *DiscoveryPipeline) Query() domain.QueryState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

// Close stops the debouncer and cancels in-flight work. Late completions
// are dropped by the final generation bump.
func (p *DiscoveryPipeline) Close() {
	p.debounce.Close()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// restartLocked starts a new generation for the current inputs.
// The caller holds p.mu.
func (p *DiscoveryPipeline) restartLocked() {
	p.gen++
	gen := p.gen
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	spec := p.query.Spec()
	logger.Debug("Discovery: gen %d -> %s page %d", gen, spec.Strategy, spec.Page)
	p.publishLocked(domain.PipelineState{Phase: domain.PhaseLoading})

	go p.run(ctx, gen, spec)
}

// run executes one generation: fetch, then verify. Every write back into
// the pipeline re-checks the generation under the mutex.
func (p *DiscoveryPipeline) run(ctx context.Context, gen uint64, spec domain.FetchSpec) {
	raw, err := p.source.Fetch(ctx, spec)

	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			p.mu.Unlock()
			return
		}
		logger.Warn("Discovery: gen %d fetch failed: %v", gen, err)
		p.publishLocked(domain.PipelineState{
			Phase:   domain.PhaseError,
			Message: err.Error(),
		})
		p.mu.Unlock()
		return
	}

	totalPages := domain.TotalPages(raw.Total, spec.PageSize)
	p.knownPages = totalPages

	if raw.Total == 0 {
		reason := domain.EmptyNoMatches
		if spec.Strategy == domain.StrategyBrowse {
			reason = domain.EmptyNoCatalog
		}
		p.publishLocked(domain.PipelineState{
			Phase:  domain.PhaseEmpty,
			Reason: reason,
		})
		p.mu.Unlock()
		return
	}

	p.publishLocked(domain.PipelineState{Phase: domain.PhaseVerifying})
	p.mu.Unlock()

	verified := p.verifier.Verify(ctx, raw)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen || ctx.Err() != nil {
		return
	}

	if len(raw.Items) > 0 && len(verified.Items) == 0 {
		p.publishLocked(domain.PipelineState{
			Phase:      domain.PhaseEmpty,
			Reason:     domain.EmptyNoAssets,
			TotalPages: totalPages,
		})
		return
	}

	p.publishLocked(domain.PipelineState{
		Phase:      domain.PhaseReady,
		Page:       verified,
		PageNum:    spec.Page,
		TotalPages: totalPages,
	})
}

// publishLocked records and announces a state. The caller holds p.mu, which
// keeps snapshots arriving at the subscriber in publish order.
func (p *DiscoveryPipeline) publishLocked(state domain.PipelineState) {
	p.state = state
	p.notify(state)
}

// genreEqual compares two optional genres by value.
func genreEqual(a, b *domain.Genre) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
