// Package host models the editing surface and document workspace the
// overlay attaches to.
package host

import (
	"path/filepath"
	"strings"
)

// Document is one markdown file in the workspace.
type Document struct {
	Path string
	Text string
}

// BaseName returns the document's link name: the file name without its
// directory or extension.
func (d Document) BaseName() string {
	base := filepath.Base(d.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Surface is the subset of editor state and commands the overlay consumes.
// Availability is asynchronous relative to overlay triggers, so every
// accessor reports presence instead of failing; the overlay treats an
// absent document or surface as nothing to do.
type Surface interface {
	// ActiveDocument returns the focused document and whether one exists.
	// The text reflects the live editing buffer, not what is on disk.
	ActiveDocument() (Document, bool)

	// Editing reports whether the active surface is an editable view in
	// edit mode. The overlay stays hidden on any other surface.
	Editing() bool

	// ScrollToTop moves the editing viewport to line 0, column 0.
	ScrollToTop()

	// OpenLink navigates to a workspace link such as "README#Install".
	OpenLink(link string)
}
