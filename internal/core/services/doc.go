// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The discovery pipeline lives here: debouncing of text input,
// strategy execution against the catalog gateway, concurrent cover
// verification, and the generation-counted state machine that keeps
// stale completions from ever reaching the presentation layer.
package services
