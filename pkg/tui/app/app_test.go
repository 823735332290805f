package app

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/outline/pkg/host"
	"tableflip.dev/outline/pkg/menu"
	"tableflip.dev/outline/pkg/settings"
)

const guideDoc = "# Intro\ntext\n## Setup\nmore text\n### Details\n#### Deep\n"

func newTestWorkspace(t *testing.T, files map[string]string) *host.Workspace {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	ws, err := host.LoadWorkspace(dir)
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}
	return ws
}

func newTestModel(t *testing.T, files map[string]string) *Model {
	t.Helper()
	m := New(newTestWorkspace(t, files), nil)
	m.termWidth = 96
	m.termHeight = 28
	m.applySizes()
	m.ctrl.LayoutChanged()
	return m
}

func assertAppModel(t *testing.T, model tea.Model) *Model {
	t.Helper()
	m, ok := model.(*Model)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return m
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestViewRendersMenuAndControl(t *testing.T) {
	m := newTestModel(t, map[string]string{"guide.md": guideDoc})

	if got := m.ctrl.State(); got != menu.StateFull {
		t.Fatalf("state = %v, want %v", got, menu.StateFull)
	}

	view := stripANSI(m.View())
	if got := strings.Count(view, "▲ top"); got != 1 {
		t.Fatalf("control rendered %d times, want 1; view=%q", got, view)
	}

	items := m.ctrl.Items()
	if len(items) != 3 {
		t.Fatalf("menu items = %d, want 3 (levels 4+ excluded)", len(items))
	}
	if items[2].Text != "Details" || items[2].Indent != 2 {
		t.Fatalf("unexpected third item: %+v", items[2])
	}
}

func TestViewMenuHiddenWhenDisabled(t *testing.T) {
	m := newTestModel(t, map[string]string{"guide.md": guideDoc})

	m.applySettings(func(d *settings.Display) {
		d.SetMenuEnabled(false)
	})

	if got := m.ctrl.State(); got != menu.StateMinimal {
		t.Fatalf("state = %v, want %v", got, menu.StateMinimal)
	}
	view := stripANSI(m.View())
	if got := strings.Count(view, "▲ top"); got != 1 {
		t.Fatalf("control rendered %d times, want 1", got)
	}
	if len(m.ctrl.Items()) != 0 {
		t.Fatalf("minimal overlay should carry no menu items")
	}
}

func TestRepeatedLayoutEventsKeepSingleControl(t *testing.T) {
	m := newTestModel(t, map[string]string{"guide.md": guideDoc})

	for i := 0; i < 5; i++ {
		next, _ := m.Update(tea.WindowSizeMsg{Width: 96, Height: 28})
		m = assertAppModel(t, next)
	}

	view := stripANSI(m.View())
	if got := strings.Count(view, "▲ top"); got != 1 {
		t.Fatalf("control rendered %d times after repeated layout events, want 1", got)
	}
	if got := len(m.ctrl.Items()); got != 3 {
		t.Fatalf("menu items = %d after repeated layout events, want 3", got)
	}
}

func TestBrowseModeDetachesOverlay(t *testing.T) {
	m := newTestModel(t, map[string]string{"guide.md": guideDoc})

	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = assertAppModel(t, next)

	if m.Editing() {
		t.Fatalf("expected browse mode to leave editing")
	}
	if got := m.ctrl.State(); got != menu.StateDetached {
		t.Fatalf("state = %v, want %v", got, menu.StateDetached)
	}
	view := stripANSI(m.View())
	if strings.Contains(view, "▲ top") {
		t.Fatalf("detached overlay should not render the control")
	}
}

func TestSettingsTierToggleReenablesMenu(t *testing.T) {
	m := newTestModel(t, map[string]string{"guide.md": guideDoc})

	m.mode = modeSettings
	m.handleSettingsKey(tea.KeyPressMsg{Text: "m", Code: 'm'})
	if got := m.ctrl.State(); got != menu.StateMinimal {
		t.Fatalf("state after disable = %v, want %v", got, menu.StateMinimal)
	}

	m.handleSettingsKey(tea.KeyPressMsg{Text: "1", Code: '1'})
	if !m.display.EnableHeaderMenu {
		t.Fatalf("turning a tier on must re-enable the menu")
	}
	if got := m.ctrl.State(); got != menu.StateFull {
		t.Fatalf("state after tier on = %v, want %v", got, menu.StateFull)
	}
}

func TestScrollTopMovesCursorToStart(t *testing.T) {
	m := newTestModel(t, map[string]string{"guide.md": guideDoc})

	m.jumpToLine(4)
	if m.ta.Line() == 0 {
		t.Fatalf("setup: cursor should be away from the top")
	}

	var cmds []tea.Cmd
	m.handleEditKey(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}, &cmds)
	if got := m.ta.Line(); got != 0 {
		t.Fatalf("cursor line = %d after scroll-to-top, want 0", got)
	}
}

func TestOpenLinkJumpsToHeading(t *testing.T) {
	m := newTestModel(t, map[string]string{"guide.md": guideDoc})

	m.OpenLink("guide#Setup")
	if got := m.ta.Line(); got != 2 {
		t.Fatalf("cursor line = %d after following link, want 2", got)
	}
}

func TestMenuActivationNavigatesAndReturnsToEdit(t *testing.T) {
	m := newTestModel(t, map[string]string{"guide.md": guideDoc})

	m.mode = modeMenu
	m.handleMenuKey(tea.KeyPressMsg{Text: "j", Code: 'j'})
	m.handleMenuKey(tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.mode != modeEdit {
		t.Fatalf("expected activation to return to edit mode")
	}
	if got := m.ta.Line(); got != 2 {
		t.Fatalf("cursor line = %d after menu activation, want 2", got)
	}
}

func TestRefreshDueRebuildsMenuItems(t *testing.T) {
	m := newTestModel(t, map[string]string{"guide.md": guideDoc})

	m.ta.SetValue(guideDoc + "## Appendix\n")
	next, _ := m.Update(refreshDueMsg{})
	m = assertAppModel(t, next)

	items := m.ctrl.Items()
	if len(items) != 4 {
		t.Fatalf("menu items = %d after refresh, want 4", len(items))
	}
	if items[3].Text != "Appendix" {
		t.Fatalf("unexpected last item: %+v", items[3])
	}
}

func TestSwitchDocumentReattachesToNewSurface(t *testing.T) {
	m := newTestModel(t, map[string]string{
		"alpha.md": "# Alpha\n",
		"beta.md":  "# Beta\n",
	})

	if got := m.ctrl.Container(); got != "alpha" {
		t.Fatalf("container = %q, want %q", got, "alpha")
	}

	m.switchDocument(1)
	if got := m.ctrl.Container(); got != "beta" {
		t.Fatalf("container = %q after switch, want %q", got, "beta")
	}
	items := m.ctrl.Items()
	if len(items) != 1 || items[0].Text != "Beta" {
		t.Fatalf("unexpected items after switch: %+v", items)
	}
}

func TestEmptyWorkspaceStaysDetached(t *testing.T) {
	dir := t.TempDir()
	ws, err := host.LoadWorkspace(dir)
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}
	m := New(ws, nil)
	m.termWidth = 96
	m.termHeight = 28
	m.applySizes()
	m.ctrl.LayoutChanged()

	if got := m.ctrl.State(); got != menu.StateDetached {
		t.Fatalf("state = %v with no documents, want %v", got, menu.StateDetached)
	}
	view := stripANSI(m.View())
	if strings.Contains(view, "▲ top") {
		t.Fatalf("no overlay should render without an active document")
	}
}
