// Package settingspanel renders the overlay settings controls.
package settingspanel

import (
	"fmt"
	"strings"

	"tableflip.dev/outline/pkg/settings"
	"tableflip.dev/outline/pkg/tui/theme"
)

// Model renders the four display toggles. Mutation happens in the app; the
// panel re-renders from the current record on every toggle so the coupling
// between the menu switch and the tier switches is always visible.
type Model struct {
	display settings.Display
	th      theme.SettingsTheme
}

// New returns a settings panel with the given styles.
func New(th theme.SettingsTheme) *Model {
	return &Model{th: th, display: settings.Defaults()}
}

// SetDisplay replaces the rendered record.
func (m *Model) SetDisplay(d settings.Display) {
	m.display = d
}

// View renders the framed panel.
func (m *Model) View() string {
	rows := []string{
		m.th.Title.Render("Display Settings"),
		"",
		m.row("m", "Header menu", m.display.EnableHeaderMenu),
		m.row("1", "Show H1", m.display.ShowH1),
		m.row("2", "Show H2", m.display.ShowH2),
		m.row("3", "Show H3", m.display.ShowH3),
		"",
		m.th.Off.Render("esc close"),
	}
	return m.th.Frame.Render(strings.Join(rows, "\n"))
}

func (m *Model) row(key, label string, on bool) string {
	state := m.th.Off.Render("off")
	if on {
		state = m.th.On.Render("on")
	}
	return fmt.Sprintf("%s %-14s %s", m.th.Key.Render("["+key+"]"), label, state)
}
