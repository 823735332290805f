// Package theme centralizes Lip Gloss styles for the outline TUI.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the styles used across the UI.
type Theme struct {
	Menu     MenuTheme
	Control  ControlTheme
	Footer   FooterTheme
	Settings SettingsTheme
	Editor   EditorTheme
}

// MenuTheme styles the floating heading menu.
type MenuTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
}

// ControlTheme styles the scroll-to-top control.
type ControlTheme struct {
	Frame lipgloss.Style
	Label lipgloss.Style
}

// FooterTheme styles the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// SettingsTheme styles the settings panel overlay.
type SettingsTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	On    lipgloss.Style
	Off   lipgloss.Style
	Key   lipgloss.Style
}

// EditorTheme styles the document header above the editing surface.
type EditorTheme struct {
	Title    lipgloss.Style
	Dirty    lipgloss.Style
	Position lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Menu: MenuTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:    lipgloss.NewStyle().Bold(true),
			Item:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Reverse(true),
			Empty:    lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Control: ControlTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()),
			Label: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Settings: SettingsTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			On:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Off:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true),
			Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Editor: EditorTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Dirty:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Position: lipgloss.NewStyle().Faint(true),
		},
	}
}
