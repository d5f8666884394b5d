package driving

import (
	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

// DiscoveryService drives the catalog discovery pipeline. Input methods may
// be called from any goroutine; the pipeline serialises state mutation
// internally and publishes snapshots through the notify callback.
type DiscoveryService interface {
	// SetText records a keystroke. The fetch is only triggered once the
	// text settles after the debounce quiet period.
	SetText(text string)

	// Submit settles the pending text immediately, skipping the remainder
	// of the quiet period.
	Submit()

	// SetGenre selects a genre (nil clears the selection) and resets the
	// page to 1.
	SetGenre(genre *domain.Genre)

	// SetPage jumps to a 1-based page. Fails synchronously with
	// domain.ErrInvalidPage when n is outside [1, totalPages]; no state
	// transition occurs.
	SetPage(n int) error

	// SetPageSize changes the page length and resets the page to 1.
	SetPageSize(n int) error

	// Refresh re-runs the pipeline with the current inputs. Used to retry
	// after an error.
	Refresh()

	// State returns the current published state.
	State() domain.PipelineState

	// Query returns a snapshot of the current inputs.
	Query() domain.QueryState

	// Close stops the debounce timer and cancels in-flight work.
	Close()
}
