// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

// PipelineUpdated carries a discovery pipeline snapshot into the model.
// Snapshots arrive in publish order; the pipeline has already suppressed
// anything stale.
type PipelineUpdated struct {
	State domain.PipelineState
}

// ConfigReloaded is sent when the config file changed on disk.
type ConfigReloaded struct {
	PageSize int
}

// InputRejected is sent when an input event was refused at the boundary,
// such as a page jump outside the valid range.
type InputRejected struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
