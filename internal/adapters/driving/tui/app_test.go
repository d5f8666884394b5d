package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

// stubDiscovery implements driving.DiscoveryService with no behaviour.
type stubDiscovery struct{}

func (stubDiscovery) SetText(string)              {}
func (stubDiscovery) Submit()                     {}
func (stubDiscovery) SetGenre(*domain.Genre)      {}
func (stubDiscovery) SetPage(int) error           { return nil }
func (stubDiscovery) SetPageSize(int) error       { return nil }
func (stubDiscovery) Refresh()                    {}
func (stubDiscovery) State() domain.PipelineState { return domain.PipelineState{} }
func (stubDiscovery) Query() domain.QueryState    { return domain.QueryState{Page: 1} }
func (stubDiscovery) Close()                      {}

func TestNewApp(t *testing.T) {
	app, err := NewApp(&Ports{Discovery: stubDiscovery{}})

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.NotNil(t, app.Init())
}

func TestNewApp_MissingDiscovery(t *testing.T) {
	_, err := NewApp(&Ports{})

	assert.Error(t, err)
}

func TestNewApp_NilPorts(t *testing.T) {
	_, err := NewApp(nil)

	assert.Error(t, err)
}

func TestApp_QuitKey(t *testing.T) {
	app, err := NewApp(&Ports{Discovery: stubDiscovery{}})
	require.NoError(t, err)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_QKeyTypesWhileSearching(t *testing.T) {
	app, err := NewApp(&Ports{Discovery: stubDiscovery{}})
	require.NoError(t, err)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	// Enter typing mode, then press q: it must type, not quit.
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	app = model.(*App)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if cmd != nil {
		assert.NotEqual(t, tea.Quit(), cmd())
	}
}

func TestApp_CtrlCAlwaysQuits(t *testing.T) {
	app, err := NewApp(&Ports{Discovery: stubDiscovery{}})
	require.NoError(t, err)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	app = model.(*App)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_View(t *testing.T) {
	app, err := NewApp(&Ports{Discovery: stubDiscovery{}})
	require.NoError(t, err)

	assert.NotEmpty(t, app.View())
}

func TestPorts_Validate(t *testing.T) {
	assert.NoError(t, (&Ports{Discovery: stubDiscovery{}}).Validate())
	assert.Error(t, (&Ports{}).Validate())

	var nilPorts *Ports
	assert.Error(t, nilPorts.Validate())
}
