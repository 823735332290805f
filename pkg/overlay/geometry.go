// Package overlay computes placement for the floating controls and splices
// their rendered views onto the host frame.
package overlay

import "github.com/charmbracelet/lipgloss/v2"

const (
	// MinWidth is the floor applied to the computed overlay width.
	MinWidth = 120
	// WidthFraction is the share of the container width the overlay takes
	// when the container is wide enough for the floor not to apply.
	WidthFraction = 10

	menuMarginX = 4
	menuMarginY = 3

	controlMarginX = 2
	controlMarginY = 1
)

// Placement controls overlay alignment and sizing within the host frame.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int
}

// Geometry holds the per-reposition sizing of both floating elements. It is
// derived from the container's current width on every call and never cached
// across resizes.
type Geometry struct {
	Width   int
	Menu    Placement
	Control Placement
}

// Compute derives overlay geometry from the container's measured width: the
// menu and the scroll control share a width of max(MinWidth,
// width/WidthFraction), the menu sits at a fixed offset from the container's
// bottom-right corner, and the control sits at a smaller offset inside it.
// Widths wider than the container are clamped at composition time.
func Compute(containerWidth int) Geometry {
	w := containerWidth / WidthFraction
	if w < MinWidth {
		w = MinWidth
	}
	return Geometry{
		Width: w,
		Menu: Placement{
			Horizontal: lipgloss.Right,
			Vertical:   lipgloss.Bottom,
			MarginX:    menuMarginX,
			MarginY:    menuMarginY,
			Width:      w,
		},
		Control: Placement{
			Horizontal: lipgloss.Right,
			Vertical:   lipgloss.Bottom,
			MarginX:    controlMarginX,
			MarginY:    controlMarginY,
			Width:      w,
		},
	}
}

// Centered places a view in the middle of the frame, used for modal panels.
func Centered(width, height int) Placement {
	return Placement{
		Horizontal: lipgloss.Center,
		Vertical:   lipgloss.Center,
		Width:      width,
		Height:     height,
	}
}
