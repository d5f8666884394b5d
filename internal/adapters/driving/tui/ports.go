package tui

import (
	"errors"

	"github.com/marquee-labs/marquee-cli/internal/core/ports/driving"
)

// Ports bundles the driving-port implementations the TUI needs.
type Ports struct {
	// Discovery drives the catalog discovery pipeline. Required.
	Discovery driving.DiscoveryService
}

// Validate checks that the required ports are present.
func (p *Ports) Validate() error {
	if p == nil || p.Discovery == nil {
		return errors.New("discovery service is required")
	}
	return nil
}
