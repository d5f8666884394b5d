package domain

// Phase identifies the pipeline's coarse state.
type Phase int

const (
	// PhaseIdle means no request has been issued yet.
	PhaseIdle Phase = iota

	// PhaseLoading means a catalog fetch is in flight.
	PhaseLoading

	// PhaseVerifying means the fetch completed and cover probes are in flight.
	PhaseVerifying

	// PhaseReady means a verified page is available for display.
	PhaseReady

	// PhaseEmpty means the request completed with nothing to display.
	PhaseEmpty

	// PhaseError means the fetch failed. The next input change retries.
	PhaseError
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseVerifying:
		return "verifying"
	case PhaseReady:
		return "ready"
	case PhaseEmpty:
		return "empty"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// EmptyReason distinguishes why a completed request has nothing to display.
type EmptyReason int

const (
	// EmptyNoCatalog means the unfiltered catalog has no items at all.
	EmptyNoCatalog EmptyReason = iota

	// EmptyNoMatches means no items matched the query or genre.
	EmptyNoMatches

	// EmptyNoAssets means the raw page was non-empty but every cover
	// probe failed.
	EmptyNoAssets
)

// String returns a human-readable empty-state message.
func (r EmptyReason) String() string {
	switch r {
	case EmptyNoCatalog:
		return "no catalog data"
	case EmptyNoMatches:
		return "no results for query"
	case EmptyNoAssets:
		return "no displayable covers for this page"
	default:
		return "empty"
	}
}

// PipelineState is the single coherent state published to the presentation
// layer. Exactly one state is current; only the discovery pipeline writes it.
type PipelineState struct {
	Phase Phase

	// Page holds the verified page when Phase is PhaseReady.
	Page VerifiedPage

	// PageNum is the 1-based page number when Phase is PhaseReady.
	PageNum int

	// TotalPages is ceil(totalCount/pageSize), computed from the raw
	// page's total. Cover probe losses do not change it.
	TotalPages int

	// Reason is set when Phase is PhaseEmpty.
	Reason EmptyReason

	// Message is the human-readable error when Phase is PhaseError.
	Message string
}
