// Package app hosts the Bubble Tea program for the outline TUI.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/outline/pkg/host"
	"tableflip.dev/outline/pkg/menu"
	"tableflip.dev/outline/pkg/overlay"
	"tableflip.dev/outline/pkg/settings"
	"tableflip.dev/outline/pkg/tui/components/headingmenu"
	"tableflip.dev/outline/pkg/tui/components/help"
	"tableflip.dev/outline/pkg/tui/components/scrolltop"
	"tableflip.dev/outline/pkg/tui/components/settingspanel"
	"tableflip.dev/outline/pkg/tui/theme"
)

// Model states
type mode int

const (
	modeEdit mode = iota
	modeBrowse
	modeMenu
	modeSettings
	modeHelp
)

type (
	refreshDueMsg struct{}

	watchStartedMsg struct {
		ch     <-chan host.Event
		cancel context.CancelFunc
		err    error
	}
	watchEventMsg   struct{ event host.Event }
	watchStoppedMsg struct{}
)

// Model contains UI state. It doubles as the host.Surface the menu
// controller consumes: the editing buffer, not the file on disk, is the
// active document text.
type Model struct {
	ws    *host.Workspace
	store *settings.Store

	ctx    context.Context
	cancel context.CancelFunc

	mode    mode
	editing bool

	paths     []string
	active    int
	savedText string

	ta textarea.Model

	display settings.Display
	ctrl    *menu.Controller

	menuView     *headingmenu.Model
	controlView  *scrolltop.Model
	settingsView *settingspanel.Model
	helpView     *help.Model

	th theme.Theme

	termWidth  int
	termHeight int

	status string

	refreshCh   chan struct{}
	watchCh     <-chan host.Event
	watchCancel context.CancelFunc
}

// New creates the UI model over a workspace and settings store. A nil store
// runs with in-memory defaults.
func New(ws *host.Workspace, store *settings.Store) *Model {
	ta := textarea.New()
	ta.Placeholder = "Start writing..."
	ta.Focus()

	display := settings.Defaults()
	if store != nil {
		if loaded, err := store.Display(); err == nil {
			display = loaded
		} else {
			fmt.Fprintf(os.Stderr, "app: load settings: %v\n", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	th := theme.Default()

	m := &Model{
		ws:           ws,
		store:        store,
		ctx:          ctx,
		cancel:       cancel,
		mode:         modeEdit,
		editing:      true,
		ta:           ta,
		display:      display,
		th:           th,
		menuView:     headingmenu.New(th.Menu),
		controlView:  scrolltop.New(th.Control),
		settingsView: settingspanel.New(th.Settings),
		refreshCh:    make(chan struct{}, 1),
	}
	m.ctrl = menu.New(m, m.currentDisplay, m.notifyRefresh)

	if ws != nil {
		m.paths = ws.Paths()
	}
	if len(m.paths) > 0 {
		m.openPath(m.paths[0])
	}
	m.ctrl.SurfaceChanged()
	return m
}

// currentDisplay hands the controller the live settings record so toggles
// apply on the very next render.
func (m *Model) currentDisplay() settings.Display {
	return m.display
}

// notifyRefresh runs on the debounce timer goroutine; it only nudges the
// event loop, which services the refresh on its own thread.
func (m *Model) notifyRefresh() {
	select {
	case m.refreshCh <- struct{}{}:
	default:
	}
}

// ActiveDocument implements host.Surface over the live editing buffer.
func (m *Model) ActiveDocument() (host.Document, bool) {
	if m.active < 0 || m.active >= len(m.paths) {
		return host.Document{}, false
	}
	return host.Document{Path: m.paths[m.active], Text: m.ta.Value()}, true
}

// Editing implements host.Surface.
func (m *Model) Editing() bool {
	return m.editing
}

// ScrollToTop implements host.Surface.
func (m *Model) ScrollToTop() {
	m.jumpToLine(0)
}

// OpenLink implements host.Surface, resolving the heading link through the
// workspace's own policy (first matching heading wins).
func (m *Model) OpenLink(link string) {
	if m.ws == nil {
		return
	}
	target, ok := m.ws.ResolveLink(link)
	if !ok {
		return
	}
	if m.active < 0 || m.active >= len(m.paths) || m.paths[m.active] != target.Path {
		m.openPath(target.Path)
		m.ctrl.SurfaceChanged()
	}
	m.jumpToLine(target.Line)
}

// jumpToLine walks the cursor to the target row. The textarea exposes no
// direct row setter, so navigation steps the cursor and re-reads its line.
func (m *Model) jumpToLine(line int) {
	current := m.ta.Line()
	for current > line {
		m.ta.CursorUp()
		next := m.ta.Line()
		if next == current {
			break
		}
		current = next
	}
	for current < line {
		m.ta.CursorDown()
		next := m.ta.Line()
		if next == current {
			break
		}
		current = next
	}
	m.ta.CursorStart()
}

// openPath loads the document at path into the editing buffer.
func (m *Model) openPath(path string) {
	idx := -1
	for i, p := range m.paths {
		if p == path {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	doc, err := m.ws.Load(path)
	if err != nil {
		m.setStatus("ERR: " + err.Error())
		return
	}
	m.active = idx
	m.savedText = doc.Text
	m.ta.SetValue(doc.Text)
	m.jumpToLine(0)
}

func (m *Model) dirty() bool {
	if m.active < 0 || m.active >= len(m.paths) {
		return false
	}
	return m.ta.Value() != m.savedText
}

func (m *Model) setStatus(s string) {
	m.status = s
}

// Init starts the workspace watcher and arms the refresh listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(startWatchCmd(m.ctx, m.ws), m.waitForRefresh())
}

func startWatchCmd(parent context.Context, ws *host.Workspace) tea.Cmd {
	if ws == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := ws.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) waitForRefresh() tea.Cmd {
	ch := m.refreshCh
	return func() tea.Msg {
		<-ch
		return refreshDueMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// shutdown tears the overlay down synchronously: no timers or watchers
// survive the program.
func (m *Model) shutdown() {
	m.ctrl.Close()
	m.stopWatch()
	m.cancel()
}

func (m *Model) handleWatchEvent(ev host.Event) {
	switch ev.Type {
	case host.EventDocumentChanged:
		if m.active < 0 || m.active >= len(m.paths) || m.paths[m.active] != ev.Path {
			return
		}
		if m.dirty() {
			m.setStatus("Changed on disk; buffer kept")
			return
		}
		doc, err := m.ws.Load(ev.Path)
		if err != nil {
			m.setStatus("ERR: " + err.Error())
			return
		}
		m.savedText = doc.Text
		m.ta.SetValue(doc.Text)
		m.ctrl.ContentChanged()
	case host.EventWorkspaceInvalidated:
		if err := m.ws.Scan(); err != nil {
			m.setStatus("ERR: " + err.Error())
			return
		}
		current := ""
		if m.active >= 0 && m.active < len(m.paths) {
			current = m.paths[m.active]
		}
		m.paths = m.ws.Paths()
		m.active = -1
		for i, p := range m.paths {
			if p == current {
				m.active = i
				break
			}
		}
		if m.active == -1 && len(m.paths) > 0 {
			m.openPath(m.paths[0])
		}
		m.ctrl.SurfaceChanged()
	}
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		m.ctrl.LayoutChanged()
	case refreshDueMsg:
		m.ctrl.Refresh()
		cmds = append(cmds, m.waitForRefresh())
	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus("ERR: watch " + msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if cmd := startWatchCmd(m.ctx, m.ws); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.mode {
	case modeHelp:
		m.handleHelpKey(msg, cmds)
	case modeSettings:
		m.handleSettingsKey(msg)
	case modeMenu:
		m.handleMenuKey(msg)
	case modeBrowse:
		m.handleBrowseKey(msg, cmds)
	default:
		m.handleEditKey(msg, cmds)
	}
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "ctrl+q":
		m.shutdown()
		*cmds = append(*cmds, tea.Quit)
	case "esc":
		m.mode = modeBrowse
		m.editing = false
		m.ctrl.SurfaceChanged()
	case "ctrl+s":
		m.saveActive()
	case "ctrl+t":
		m.ctrl.ActivateScrollTop()
	case "ctrl+o":
		if m.ctrl.State() == menu.StateFull {
			m.mode = modeMenu
		}
	case "ctrl+g":
		m.mode = modeSettings
	case "ctrl+n":
		m.switchDocument(1)
	case "ctrl+p":
		m.switchDocument(-1)
	default:
		before := m.ta.Value()
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		*cmds = append(*cmds, cmd)
		if m.ta.Value() != before {
			m.ctrl.ContentChanged()
		}
	}
}

func (m *Model) handleBrowseKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+q":
		m.shutdown()
		*cmds = append(*cmds, tea.Quit)
	case "enter", "e", "i":
		m.mode = modeEdit
		m.editing = true
		m.ctrl.SurfaceChanged()
	case "n", "tab":
		m.switchDocument(1)
	case "p", "shift+tab":
		m.switchDocument(-1)
	case "s":
		m.mode = modeSettings
	case "?":
		m.openHelp()
	}
}

func (m *Model) handleMenuKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc", "ctrl+o":
		m.mode = modeEdit
	case "j", "down":
		m.ctrl.MoveSelection(1)
	case "k", "up":
		m.ctrl.MoveSelection(-1)
	case "g":
		m.ctrl.ActivateScrollTop()
		m.mode = modeEdit
	case "enter":
		m.ctrl.ActivateSelected()
		m.mode = modeEdit
	}
}

func (m *Model) handleSettingsKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc", "q":
		if m.editing {
			m.mode = modeEdit
		} else {
			m.mode = modeBrowse
		}
	case "m":
		m.applySettings(func(d *settings.Display) {
			d.SetMenuEnabled(!d.EnableHeaderMenu)
		})
	case "1":
		m.applySettings(func(d *settings.Display) {
			d.SetTier(1, !d.ShowH1)
		})
	case "2":
		m.applySettings(func(d *settings.Display) {
			d.SetTier(2, !d.ShowH2)
		})
	case "3":
		m.applySettings(func(d *settings.Display) {
			d.SetTier(3, !d.ShowH3)
		})
	}
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.mode = modeBrowse
	default:
		if m.helpView != nil {
			var cmd tea.Cmd
			m.helpView, cmd = m.helpView.Update(msg)
			*cmds = append(*cmds, cmd)
		}
	}
}

// applySettings mutates the record, persists it, and re-applies the overlay
// attachment in one step so every toggle is visible immediately in both the
// panel and the overlay.
func (m *Model) applySettings(mutate func(*settings.Display)) {
	mutate(&m.display)
	if m.store != nil {
		if err := m.store.SaveDisplay(m.display); err != nil {
			m.setStatus("ERR: " + err.Error())
		}
	}
	m.ctrl.SettingsChanged()
}

func (m *Model) switchDocument(delta int) {
	if len(m.paths) == 0 {
		return
	}
	if m.dirty() {
		m.saveActive()
	}
	next := (m.active + delta + len(m.paths)) % len(m.paths)
	m.openPath(m.paths[next])
	m.ctrl.SurfaceChanged()
}

func (m *Model) saveActive() {
	doc, ok := m.ActiveDocument()
	if !ok {
		return
	}
	if err := m.ws.Save(doc.Path, doc.Text); err != nil {
		m.setStatus("ERR: " + err.Error())
		return
	}
	m.savedText = doc.Text
	m.setStatus("Saved " + doc.BaseName())
}

func (m *Model) openHelp() {
	if m.helpView == nil {
		m.helpView = help.New(helpWidth(m.termWidth), helpHeight(m.termHeight))
	} else {
		m.helpView.SetSize(helpWidth(m.termWidth), helpHeight(m.termHeight))
	}
	m.mode = modeHelp
}

func helpWidth(termWidth int) int {
	w := termWidth - 10
	if w > 78 {
		w = 78
	}
	return w
}

func helpHeight(termHeight int) int {
	h := termHeight - 4
	if h > 24 {
		h = 24
	}
	return h
}

// applySizes recalculates component sizes from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.ta.SetWidth(m.termWidth)
	bodyHeight := m.termHeight - 3
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.ta.SetHeight(bodyHeight)
	if m.helpView != nil {
		m.helpView.SetSize(helpWidth(m.termWidth), helpHeight(m.termHeight))
	}
}

// View renders the editor surface and splices the overlay atop it.
func (m *Model) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return ""
	}
	return overlay.Frame(m.renderEditor(), m.termWidth, m.termHeight, m.overlayLayers()...)
}

// overlayLayers derives the floating elements from the controller state.
// Geometry is recomputed from the container width on every render; nothing
// is cached between frames.
func (m *Model) overlayLayers() []overlay.Layer {
	var layers []overlay.Layer

	switch m.ctrl.State() {
	case menu.StateFull:
		geom := overlay.Compute(m.termWidth)
		w := m.fitOverlayWidth(geom.Width, geom.Menu.MarginX)
		menuAt := geom.Menu
		menuAt.Width = w
		m.menuView.SetWidth(w)
		m.menuView.SetContent(m.ctrl.Container(), m.ctrl.Items(), m.ctrl.SelectedIndex())
		m.menuView.SetFocused(m.mode == modeMenu)
		layers = append(layers, overlay.Layer{View: m.menuView.View(), At: menuAt})

		controlAt := geom.Control
		controlAt.Width = w
		m.controlView.SetWidth(w)
		layers = append(layers, overlay.Layer{View: m.controlView.View(), At: controlAt})
	case menu.StateMinimal:
		geom := overlay.Compute(m.termWidth)
		w := m.fitOverlayWidth(geom.Width, geom.Control.MarginX)
		controlAt := geom.Control
		controlAt.Width = w
		m.controlView.SetWidth(w)
		layers = append(layers, overlay.Layer{View: m.controlView.View(), At: controlAt})
	}

	if m.mode == modeSettings {
		m.settingsView.SetDisplay(m.display)
		layers = append(layers, overlay.Layer{View: m.settingsView.View(), At: overlay.Centered(0, 0)})
	}
	if m.mode == modeHelp && m.helpView != nil {
		layers = append(layers, overlay.Layer{View: m.helpView.View(), At: overlay.Centered(0, 0)})
	}
	return layers
}

// fitOverlayWidth keeps the computed overlay width inside the terminal.
func (m *Model) fitOverlayWidth(want, margin int) int {
	maxWidth := m.termWidth - margin - 1
	if want > maxWidth {
		want = maxWidth
	}
	if want < 8 {
		want = 8
	}
	return want
}

func (m *Model) renderEditor() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	body := ""
	doc, ok := m.ActiveDocument()
	switch {
	case !ok:
		body = m.th.Editor.Position.Render("no markdown documents in this workspace")
	case m.editing:
		body = m.ta.View()
	default:
		body = m.renderPreview(doc)
	}

	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) renderHeader() string {
	title := "outline"
	if doc, ok := m.ActiveDocument(); ok {
		title = doc.BaseName()
	}
	parts := []string{m.th.Editor.Title.Render(title)}
	if m.dirty() {
		parts = append(parts, m.th.Editor.Dirty.Render("*"))
	}
	if len(m.paths) > 0 {
		parts = append(parts, m.th.Editor.Position.Render(fmt.Sprintf("(%d/%d)", m.active+1, len(m.paths))))
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderFooter() string {
	hint := ""
	switch m.mode {
	case modeMenu:
		hint = "j/k move · enter jump · g top · esc back"
	case modeSettings:
		hint = "m menu · 1/2/3 tiers · esc close"
	case modeBrowse:
		hint = "enter edit · n/p docs · s settings · ? help · q quit"
	case modeHelp:
		hint = "esc close"
	default:
		hint = "ctrl+o menu · ctrl+t top · ctrl+g settings · ctrl+s save · esc browse"
	}
	line := m.th.Footer.Help.Render(hint)
	if m.status != "" {
		line += "  " + m.th.Footer.Status.Render(m.status)
	}
	return line
}

func (m *Model) renderPreview(doc host.Document) string {
	height := m.termHeight - 3
	if height < 1 {
		height = 1
	}
	lines := strings.Split(doc.Text, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// Run launches the interactive TUI program.
func Run(ws *host.Workspace, store *settings.Store) error {
	p := tea.NewProgram(New(ws, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
