package driven

import "context"

// AssetProber confirms a cover asset exists on the asset host.
// The host offers no metadata endpoint, so existence is observed by
// attempting to load the resource.
type AssetProber interface {
	// Probe attempts to resolve the asset for a derived key.
	// A nil error means the cover exists and is displayable.
	Probe(ctx context.Context, key string) error
}
