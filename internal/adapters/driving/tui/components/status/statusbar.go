// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/keymap"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/styles"
	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

// Bar displays the pipeline phase, page position and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   domain.PipelineState
	message string
	typing  bool
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  domain.PipelineState{Phase: domain.PhaseIdle},
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the phase and page position.
func (b *Bar) renderLeft() string {
	if b.message != "" {
		return b.styles.Warning.Render(b.message)
	}

	switch b.state.Phase {
	case domain.PhaseLoading:
		return b.styles.Muted.Render("Loading...")
	case domain.PhaseVerifying:
		return b.styles.Muted.Render("Checking covers...")
	case domain.PhaseReady:
		return b.styles.Normal.Render(fmt.Sprintf(
			"%d items · page %d/%d",
			len(b.state.Page.Items), b.state.PageNum, b.state.TotalPages,
		))
	case domain.PhaseEmpty:
		return b.styles.Muted.Render(b.state.Reason.String())
	case domain.PhaseError:
		return b.styles.Error.Render("Error: " + b.state.Message)
	case domain.PhaseIdle:
		return b.styles.Muted.Render("Ready")
	}
	return b.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (b *Bar) renderRight() string {
	var bindings []key.Binding
	if b.typing {
		bindings = b.keymap.InputHelp()
	} else {
		bindings = b.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, bind := range bindings {
		h := bind.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the displayed pipeline state and clears any message.
func (b *Bar) SetState(state domain.PipelineState) {
	b.state = state
	b.message = ""
}

// State returns the displayed pipeline state.
func (b *Bar) State() domain.PipelineState {
	return b.state
}

// SetMessage overlays a transient message, such as a rejected page jump.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current transient message.
func (b *Bar) Message() string {
	return b.message
}

// SetTyping switches the keybinding hints for input mode.
func (b *Bar) SetTyping(typing bool) {
	b.typing = typing
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}
