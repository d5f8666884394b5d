package domain

// FetchStrategy identifies the fetch/filter/paginate algorithm chosen for
// the current inputs. Exactly one strategy is active at any instant.
type FetchStrategy int

const (
	// StrategyBrowse paginates the unfiltered catalog server-side.
	StrategyBrowse FetchStrategy = iota

	// StrategySearch paginates the text-filtered catalog server-side.
	StrategySearch

	// StrategyTagScan fetches the entire catalog once and filters by the
	// selected genre locally, paginating the filtered set locally.
	StrategyTagScan
)

// String returns the strategy name.
func (s FetchStrategy) String() string {
	switch s {
	case StrategyBrowse:
		return "browse"
	case StrategySearch:
		return "search"
	case StrategyTagScan:
		return "tagscan"
	default:
		return "unknown"
	}
}

// SelectStrategy chooses the fetch strategy for the current inputs.
// A selected genre always forces TagScan: the genre has no server-side
// filter endpoint, so settled text is passed through to the full-catalog
// call and the genre is AND-combined locally. Settled text alone selects
// Search; no inputs selects Browse.
func SelectStrategy(settledText string, genre *Genre) FetchStrategy {
	switch {
	case genre != nil:
		return StrategyTagScan
	case settledText != "":
		return StrategySearch
	default:
		return StrategyBrowse
	}
}

// QueryState holds the user-controlled discovery inputs. RawText changes on
// every keystroke; SettledText only after the debounce quiet period. At most
// one genre is selected. Page is 1-based.
type QueryState struct {
	RawText     string
	SettledText string
	Genre       *Genre
	Page        int
	PageSize    int
}

// Strategy returns the fetch strategy for the current inputs.
func (q QueryState) Strategy() FetchStrategy {
	return SelectStrategy(q.SettledText, q.Genre)
}

// FetchSpec is the immutable snapshot of one fetch request, taken at the
// moment the pipeline starts a generation.
type FetchSpec struct {
	Strategy FetchStrategy
	Text     string
	Genre    *Genre
	Page     int
	PageSize int
}

// Spec snapshots the current inputs into a FetchSpec.
func (q QueryState) Spec() FetchSpec {
	return FetchSpec{
		Strategy: q.Strategy(),
		Text:     q.SettledText,
		Genre:    q.Genre,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}
