// Package discover provides the main catalog discovery view for the TUI.
package discover

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/components/input"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/components/list"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/components/status"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/keymap"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/messages"
	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/styles"
	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driving"
)

// View is the discovery view: query input, genre filter, verified item
// list and status bar. All coordination lives in the core pipeline; the
// view only forwards input events and renders published snapshots.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.ItemList
	statusbar *status.Bar
	spinner   spinner.Model

	discovery driving.DiscoveryService

	// genreIdx indexes domain.Genres(); -1 means no genre selected.
	genreIdx int

	state  domain.PipelineState
	typing bool
	width  int
	height int
	ready  bool
}

// NewView creates a new discovery view.
func NewView(s *styles.Styles, km *keymap.KeyMap, discovery driving.DiscoveryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewQueryInput(s),
		list:      list.NewItemList(s),
		statusbar: status.NewBar(s, km),
		spinner:   sp,
		discovery: discovery,
		genreIdx:  -1,
		state:     domain.PipelineState{Phase: domain.PhaseIdle},
		width:     80,
		height:    24,
	}
}

// Init starts the spinner and issues the initial browse request.
func (v *View) Init() tea.Cmd {
	return tea.Batch(
		v.input.Init(),
		v.spinner.Tick,
		func() tea.Msg {
			v.discovery.Refresh()
			return nil
		},
	)
}

// Update handles messages for the discovery view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.PipelineUpdated:
		v.state = msg.State
		v.statusbar.SetState(msg.State)
		if msg.State.Phase == domain.PhaseReady {
			v.list.SetItems(msg.State.Page.Items)
		}
		return v, nil

	case messages.ConfigReloaded:
		// Page-size edits apply live; a no-op change is ignored by the
		// pipeline.
		_ = v.discovery.SetPageSize(msg.PageSize)
		return v, nil

	case messages.InputRejected:
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.typing {
		return v.handleTypingKey(msg)
	}

	switch msg.String() {
	case "/":
		v.typing = true
		v.statusbar.SetTyping(true)
		return v, v.input.Focus()
	case "g":
		return v, v.cycleGenre()
	case "r":
		v.discovery.Refresh()
		return v, nil
	case "left", "h":
		return v, v.jumpPage(-1)
	case "right", "l":
		return v, v.jumpPage(1)
	case "esc":
		if v.genreIdx >= 0 {
			v.genreIdx = -1
			v.discovery.SetGenre(nil)
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// handleTypingKey processes keyboard input while the query input has focus.
func (v *View) handleTypingKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.typing = false
		v.statusbar.SetTyping(false)
		v.input.Blur()
		return v, nil
	case tea.KeyEnter:
		v.typing = false
		v.statusbar.SetTyping(false)
		v.input.Blur()
		v.discovery.Submit()
		return v, nil
	default:
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	// Every keystroke reaches the pipeline raw; the core debouncer decides
	// when it settles.
	v.discovery.SetText(v.input.Value())
	return v, cmd
}

// cycleGenre advances the genre filter: none -> each genre -> none.
func (v *View) cycleGenre() tea.Cmd {
	genres := domain.Genres()
	v.genreIdx++
	if v.genreIdx >= len(genres) {
		v.genreIdx = -1
		v.discovery.SetGenre(nil)
		return nil
	}
	g := genres[v.genreIdx]
	v.discovery.SetGenre(&g)
	return nil
}

// jumpPage moves the page by delta, surfacing rejected jumps in the bar.
func (v *View) jumpPage(delta int) tea.Cmd {
	target := v.discovery.Query().Page + delta
	if err := v.discovery.SetPage(target); err != nil {
		return func() tea.Msg {
			return messages.InputRejected{Err: err}
		}
	}
	return nil
}

// View renders the discovery view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("Marquee")
	if g := v.currentGenre(); g != nil {
		header += "  " + v.styles.Genre.Render("["+string(*g)+"]")
	}
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

	switch v.state.Phase {
	case domain.PhaseLoading:
		sections = append(sections, v.spinner.View()+v.styles.Muted.Render(" fetching catalog..."))
	case domain.PhaseVerifying:
		sections = append(sections, v.spinner.View()+v.styles.Muted.Render(" checking covers..."))
	case domain.PhaseEmpty:
		sections = append(sections, v.styles.Muted.Render(v.state.Reason.String()))
	case domain.PhaseError:
		sections = append(sections, v.styles.Error.Render("Error: "+v.state.Message))
	case domain.PhaseReady:
		sections = append(sections, v.list.View())
	case domain.PhaseIdle:
		sections = append(sections, v.styles.Muted.Render("Type / to search, g to filter by genre"))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// currentGenre returns the active genre filter, nil when none.
func (v *View) currentGenre() *domain.Genre {
	genres := domain.Genres()
	if v.genreIdx < 0 || v.genreIdx >= len(genres) {
		return nil
	}
	return &genres[v.genreIdx]
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-9)
	v.statusbar.SetWidth(width)
}

// State returns the last rendered pipeline state.
func (v *View) State() domain.PipelineState {
	return v.state
}

// Typing returns whether the query input has focus.
func (v *View) Typing() bool {
	return v.typing
}
