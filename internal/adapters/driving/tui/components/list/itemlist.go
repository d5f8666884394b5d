// Package list provides the verified-item list component for the TUI.
package list

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/tui/styles"
	"github.com/marquee-labs/marquee-cli/internal/core/domain"
)

// ItemList displays one verified page of catalog items.
type ItemList struct {
	items    []domain.CatalogItem
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewItemList creates a new item list component.
func NewItemList(s *styles.Styles) *ItemList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ItemList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the item list.
func (l *ItemList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ItemList) Update(msg tea.Msg) (*ItemList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the item list.
func (l *ItemList) View() string {
	if len(l.items) == 0 {
		return l.styles.Muted.Render("Nothing to show")
	}

	visible := l.height - 1
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.items) {
		end = len(l.items)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i))
	}
	return strings.Join(lines, "\n")
}

// renderItem formats a single catalog item row.
func (l *ItemList) renderItem(index int) string {
	item := l.items[index]

	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	title := item.Title
	if title == "" {
		title = "(Untitled)"
	}
	maxTitle := l.width - 34
	if maxTitle < 10 {
		maxTitle = 10
	}
	if len(title) > maxTitle {
		title = title[:maxTitle-3] + "..."
	}

	rating := "  —  "
	if item.Rating != nil {
		rating = fmt.Sprintf("%4.1f ", *item.Rating)
	}

	genres := genreNames(item.Genres)

	row := indicator + title
	if index == l.selected {
		row = l.styles.Selected.Render(row)
	} else {
		row = l.styles.Normal.Render(row)
	}
	return row + "  " + l.styles.Rating.Render(rating) + l.styles.Genre.Render(genres)
}

// genreNames renders an item's genre flags in vocabulary order.
func genreNames(set domain.GenreSet) string {
	names := make([]string, 0, len(set))
	for g, on := range set {
		if on {
			names = append(names, string(g))
		}
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// SetItems replaces the displayed items and clamps the selection.
func (l *ItemList) SetItems(items []domain.CatalogItem) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = 0
	}
}

// Items returns the displayed items.
func (l *ItemList) Items() []domain.CatalogItem {
	return l.items
}

// MoveUp moves the selection up.
func (l *ItemList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the selection down.
func (l *ItemList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// Selected returns the index of the selected item.
func (l *ItemList) Selected() int {
	return l.selected
}

// SelectedItem returns the currently selected item, or nil when empty.
func (l *ItemList) SelectedItem() *domain.CatalogItem {
	if l.selected < 0 || l.selected >= len(l.items) {
		return nil
	}
	return &l.items[l.selected]
}

// SetDimensions sets the list dimensions.
func (l *ItemList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}
