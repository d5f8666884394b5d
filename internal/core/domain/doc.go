// Package domain defines the core business entities for Marquee.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CatalogItem: A discoverable title with genre flags and an optional rating
//   - RawPage / VerifiedPage: One fetched page before and after cover verification
//   - QueryState: The user-controlled discovery inputs
//   - FetchStrategy: The chosen fetch/filter/paginate algorithm
//   - PipelineState: The single coherent state published to the presentation layer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
