// Package scrolltop renders the floating scroll-to-top control.
package scrolltop

import "tableflip.dev/outline/pkg/tui/theme"

const label = "▲ top"

// Model renders the control sized to the overlay width computed for the
// current container.
type Model struct {
	width int
	th    theme.ControlTheme
}

// New returns a control view with the given styles.
func New(th theme.ControlTheme) *Model {
	return &Model{th: th}
}

// SetWidth fixes the rendered outer width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// View renders the framed control.
func (m *Model) View() string {
	inner := m.width - m.th.Frame.GetHorizontalBorderSize()
	if inner < 1 {
		inner = 1
	}
	return m.th.Frame.Width(inner).Render(m.th.Label.Render(label))
}
