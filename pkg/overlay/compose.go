package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Layer is one foreground view to splice onto the frame.
type Layer struct {
	View string
	At   Placement
}

// Frame overlays the given layers atop the background view, in order, while
// preserving background content outside each layer's bounds. Splicing the
// same layers onto the same background always yields the same frame, so
// callers can re-render on every event without accumulating state.
func Frame(background string, width, height int, layers ...Layer) string {
	lines := normalizeBackground(background, width, height)
	for _, layer := range layers {
		spliceLayer(lines, width, height, layer)
	}
	return strings.Join(lines, "\n")
}

func spliceLayer(bgLines []string, width, height int, layer Layer) {
	if layer.View == "" {
		return
	}
	fgLines := strings.Split(layer.View, "\n")

	overlayWidth := layer.At.Width
	if overlayWidth <= 0 {
		for _, line := range fgLines {
			if w := lipgloss.Width(line); w > overlayWidth {
				overlayWidth = w
			}
		}
	}
	if overlayWidth <= 0 {
		return
	}
	if overlayWidth > width {
		overlayWidth = width
	}

	overlayHeight := layer.At.Height
	if overlayHeight <= 0 {
		overlayHeight = len(fgLines)
	}
	if overlayHeight <= 0 {
		return
	}
	if overlayHeight > height {
		overlayHeight = height
	}

	offsetX, offsetY := offsets(width, height, overlayWidth, overlayHeight, layer.At)

	for row := 0; row < overlayHeight; row++ {
		destY := offsetY + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine := ""
		if row < len(fgLines) {
			fgLine = fgLines[row]
		}
		fgLine = padToWidth(fgLine, overlayWidth)

		baseLine := bgLines[destY]
		prefix := sliceWidth(baseLine, 0, offsetX)
		suffix := sliceWidth(baseLine, offsetX+overlayWidth, width)
		bgLines[destY] = prefix + fgLine + suffix
	}
}

// normalizeBackground pads the view to a full width x height cell grid so
// layer splices always land on a line of known width.
func normalizeBackground(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	currWidth := lipgloss.Width(s)
	if currWidth >= width {
		return lipgloss.NewStyle().Width(width).Render(s)
	}
	return s + strings.Repeat(" ", width-currWidth)
}

// sliceWidth cuts s to the half-open cell range [start, end), respecting
// rune display widths.
func sliceWidth(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	if end > lipgloss.Width(s) {
		end = lipgloss.Width(s)
	}
	if start >= end {
		return ""
	}

	result := strings.Builder{}
	widthSeen := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		next := widthSeen + rw
		if next <= start {
			widthSeen = next
			continue
		}
		if widthSeen >= end || next > end {
			break
		}
		result.WriteRune(r)
		widthSeen = next
	}
	return result.String()
}

func offsets(width, height, overlayWidth, overlayHeight int, at Placement) (int, int) {
	h := at.Horizontal
	if h == 0 {
		h = lipgloss.Center
	}
	v := at.Vertical
	if v == 0 {
		v = lipgloss.Center
	}

	offsetX := at.MarginX
	switch h {
	case lipgloss.Right:
		offsetX = width - overlayWidth - at.MarginX
	case lipgloss.Center:
		offsetX = (width - overlayWidth) / 2
	}
	if offsetX > width-overlayWidth {
		offsetX = width - overlayWidth
	}
	if offsetX < 0 {
		offsetX = 0
	}

	offsetY := at.MarginY
	switch v {
	case lipgloss.Bottom:
		offsetY = height - overlayHeight - at.MarginY
	case lipgloss.Center:
		offsetY = (height - overlayHeight) / 2
	}
	if offsetY > height-overlayHeight {
		offsetY = height - overlayHeight
	}
	if offsetY < 0 {
		offsetY = 0
	}

	return offsetX, offsetY
}
