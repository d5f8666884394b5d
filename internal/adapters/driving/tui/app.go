// Package tui implements the interactive terminal UI for Marquee,
// following the Elm architecture with Bubbletea.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/keymap"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/messages"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/styles"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/views/discover"
)

// App is the main TUI application. It implements tea.Model.
type App struct {
	ports        *Ports
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	discoverView *discover.View
	width        int
	height       int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		styles:       s,
		keymap:       km,
		discoverView: discover.NewView(s, km, ports.Discovery),
	}, nil
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return a.discoverView.Init()
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case messages.Quit:
		return a, tea.Quit

	case tea.KeyMsg:
		// Quit keys only apply outside the query input.
		if !a.discoverView.Typing() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.discoverView, cmd = a.discoverView.Update(msg)
	return a, cmd
}

// View renders the application.
func (a *App) View() string {
	return a.discoverView.View()
}
