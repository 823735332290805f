// Package menu owns the floating overlay's attachment state and contents.
package menu

import (
	"time"

	"tableflip.dev/outline/pkg/debounce"
	"tableflip.dev/outline/pkg/heading"
	"tableflip.dev/outline/pkg/host"
	"tableflip.dev/outline/pkg/settings"
)

// State enumerates the overlay attachment states. Keeping them explicit
// avoids the partially-attached intermediate bugs that DOM-presence checks
// invite.
type State int

const (
	// StateDetached means no overlay element is attached. Initial state,
	// and the fallback whenever the active surface is not editable.
	StateDetached State = iota

	// StateMinimal means only the scroll-to-top control is attached,
	// because the heading menu is disabled in settings.
	StateMinimal

	// StateFull means both the control and the populated heading menu are
	// attached.
	StateFull
)

func (s State) String() string {
	switch s {
	case StateMinimal:
		return "minimal"
	case StateFull:
		return "full"
	default:
		return "detached"
	}
}

// maxMenuLevel caps the tiers the menu ever lists; deeper headings are
// excluded regardless of settings.
const maxMenuLevel = 3

// Item is one rendered heading menu row.
type Item struct {
	Text   string
	Line   int
	Indent int // level - 1
}

// Controller reconciles overlay attachment with host surface state. It is
// the single authority for whether the overlay exists and what it contains.
//
// All methods must be called from the host's event loop; the debounced
// refresh re-enters that loop through the notify callback supplied at
// construction, which may fire from a timer goroutine and should only
// schedule a Refresh call, never mutate state itself.
type Controller struct {
	surface host.Surface
	display func() settings.Display
	notify  func()
	refresh *debounce.Trigger

	state     State
	container string
	items     []Item
	selected  int
}

// Option configures a Controller.
type Option func(*Controller)

// WithRefreshDelay overrides the content-refresh debounce window.
func WithRefreshDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.refresh = debounce.New(d, c.notify)
	}
}

// New builds a detached controller. display is consulted on every render so
// settings changes are visible immediately; notify is invoked when a
// debounced refresh is due.
func New(surface host.Surface, display func() settings.Display, notify func(), opts ...Option) *Controller {
	c := &Controller{
		surface: surface,
		display: display,
		notify:  notify,
	}
	c.refresh = debounce.New(debounce.DefaultDelay, notify)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current attachment state.
func (c *Controller) State() State {
	return c.state
}

// Container returns the base name of the document the overlay is attached
// to, or "" when detached.
func (c *Controller) Container() string {
	return c.container
}

// Items returns the rendered heading rows.
func (c *Controller) Items() []Item {
	return c.items
}

// SurfaceChanged handles the active surface switching. The overlay is
// unconditionally detached first and then re-attached against whatever
// surface is now current; detaching an already-detached overlay is a no-op,
// which keeps repeated events from accumulating duplicate elements.
func (c *Controller) SurfaceChanged() {
	c.Detach()
	c.attach()
}

// LayoutChanged handles container geometry changes. Attachment is rebuilt
// the same way as on a surface change; positioning is recomputed by the
// renderer from the container's new width.
func (c *Controller) LayoutChanged() {
	c.Detach()
	c.attach()
}

// SettingsChanged re-applies attachment immediately after a settings
// mutation, so toggles take effect without waiting for a document event.
func (c *Controller) SettingsChanged() {
	c.Detach()
	c.attach()
}

// ContentChanged requests a debounced refresh of the heading list. Only the
// fully-attached state re-parses; the minimal overlay has no content that
// depends on document text.
func (c *Controller) ContentChanged() {
	if c.state != StateFull {
		return
	}
	c.refresh.Request()
}

// Refresh services a due refresh request: headings are re-derived from the
// document as it is now, and the item list is rebuilt wholesale.
func (c *Controller) Refresh() {
	if c.state != StateFull {
		return
	}
	c.renderItems()
}

// Detach removes every overlay element. Idempotent.
func (c *Controller) Detach() {
	c.state = StateDetached
	c.container = ""
	c.items = nil
	c.selected = 0
}

// Close tears the controller down: the pending refresh timer is cancelled
// so no callback fires after release, and the overlay is detached.
func (c *Controller) Close() {
	c.refresh.Stop()
	c.Detach()
}

// attach evaluates the current surface and builds the matching overlay.
// Every missing precondition is a silent no-op that leaves the controller
// detached.
func (c *Controller) attach() {
	doc, ok := c.surface.ActiveDocument()
	if !ok || !c.surface.Editing() {
		return
	}
	c.container = doc.BaseName()
	if !c.display().EnableHeaderMenu {
		c.state = StateMinimal
		return
	}
	c.state = StateFull
	c.renderItems()
}

// renderItems rebuilds the menu rows from the live document text, applying
// the tier filter. The previous rows are discarded, not patched.
func (c *Controller) renderItems() {
	doc, ok := c.surface.ActiveDocument()
	if !ok {
		c.Detach()
		return
	}
	display := c.display()
	extracted := heading.Extract(doc.Text)
	items := make([]Item, 0, len(extracted))
	for _, h := range extracted {
		if h.Level > maxMenuLevel || !display.Visible(h.Level) {
			continue
		}
		items = append(items, Item{
			Text:   h.Text,
			Line:   h.Line,
			Indent: h.Level - 1,
		})
	}
	c.items = items
	if c.selected >= len(items) {
		c.selected = 0
	}
}

// MoveSelection moves the highlighted menu row by delta, clamped to the
// list bounds.
func (c *Controller) MoveSelection(delta int) {
	if len(c.items) == 0 {
		return
	}
	c.selected += delta
	if c.selected < 0 {
		c.selected = 0
	}
	if c.selected >= len(c.items) {
		c.selected = len(c.items) - 1
	}
}

// Selected returns the highlighted menu row, if any.
func (c *Controller) Selected() (Item, bool) {
	if c.selected < 0 || c.selected >= len(c.items) {
		return Item{}, false
	}
	return c.items[c.selected], true
}

// SelectedIndex returns the highlighted row index.
func (c *Controller) SelectedIndex() int {
	return c.selected
}

// ActivateScrollTop asks the host to move the viewport to the document
// start. A detached overlay ignores the request.
func (c *Controller) ActivateScrollTop() {
	if c.state == StateDetached {
		return
	}
	c.surface.ScrollToTop()
}

// ActivateSelected navigates to the highlighted heading. The link carries
// the heading's literal text, not its line, so duplicate heading text
// resolves by the host's own link policy.
func (c *Controller) ActivateSelected() {
	if c.state != StateFull {
		return
	}
	item, ok := c.Selected()
	if !ok {
		return
	}
	c.surface.OpenLink(c.container + "#" + item.Text)
}
