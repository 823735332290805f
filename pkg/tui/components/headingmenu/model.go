// Package headingmenu renders the floating table-of-contents menu.
package headingmenu

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/outline/pkg/menu"
	"tableflip.dev/outline/pkg/tui/theme"
)

// Model renders the heading list owned by the menu controller. It keeps no
// document state of its own; content is handed over wholesale on every
// refresh, matching the controller's rebuild-not-patch policy.
type Model struct {
	width    int
	title    string
	items    []menu.Item
	selected int
	focused  bool

	th theme.MenuTheme
}

// New returns a menu view with the given styles.
func New(th theme.MenuTheme) *Model {
	return &Model{th: th}
}

// SetWidth fixes the rendered outer width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetContent replaces the menu's title and rows.
func (m *Model) SetContent(title string, items []menu.Item, selected int) {
	m.title = title
	m.items = items
	m.selected = selected
}

// SetFocused toggles selection highlighting.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// View renders the framed menu.
func (m *Model) View() string {
	inner := m.width - m.th.Frame.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	lines := make([]string, 0, len(m.items)+1)
	lines = append(lines, m.th.Title.MaxWidth(inner).Render(m.title))
	if len(m.items) == 0 {
		lines = append(lines, m.th.Empty.Render("no headings"))
	}
	for i, item := range m.items {
		label := strings.Repeat("  ", item.Indent) + item.Text
		style := m.th.Item
		if m.focused && i == m.selected {
			style = m.th.Selected
		}
		lines = append(lines, style.MaxWidth(inner).Render(label))
	}

	return m.th.Frame.Width(m.width - m.th.Frame.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// Height reports the rendered height in lines.
func (m *Model) Height() int {
	return lipgloss.Height(m.View())
}
