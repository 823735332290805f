// Package settings persists the overlay display preferences.
package settings

// Display holds the user-facing overlay toggles. The Previous* fields keep
// the per-tier snapshot used to restore visibility across a disable/enable
// cycle; they are absent until the menu is first disabled.
//
// Invariant after every mutation: when EnableHeaderMenu is false all three
// tier flags are false, and setting any tier flag true forces
// EnableHeaderMenu true.
type Display struct {
	EnableHeaderMenu bool `json:"enableHeaderMenu"`
	ShowH1           bool `json:"showH1"`
	ShowH2           bool `json:"showH2"`
	ShowH3           bool `json:"showH3"`

	PreviousShowH1 *bool `json:"previousShowH1,omitempty"`
	PreviousShowH2 *bool `json:"previousShowH2,omitempty"`
	PreviousShowH3 *bool `json:"previousShowH3,omitempty"`
}

// Defaults returns the settings in effect when nothing is persisted.
func Defaults() Display {
	return Display{
		EnableHeaderMenu: true,
		ShowH1:           true,
		ShowH2:           true,
		ShowH3:           true,
	}
}

// SetMenuEnabled toggles the whole heading menu. Disabling snapshots the
// current tier flags before forcing them off; enabling restores the
// snapshot, defaulting every tier to visible when none exists.
func (d *Display) SetMenuEnabled(on bool) {
	if !on {
		if d.EnableHeaderMenu {
			d.PreviousShowH1 = boolPtr(d.ShowH1)
			d.PreviousShowH2 = boolPtr(d.ShowH2)
			d.PreviousShowH3 = boolPtr(d.ShowH3)
		}
		d.EnableHeaderMenu = false
		d.ShowH1, d.ShowH2, d.ShowH3 = false, false, false
		return
	}
	d.EnableHeaderMenu = true
	d.ShowH1 = restore(d.PreviousShowH1)
	d.ShowH2 = restore(d.PreviousShowH2)
	d.ShowH3 = restore(d.PreviousShowH3)
}

// SetTier toggles visibility for one of the three menu tiers. Turning a tier
// on re-enables the menu. Levels outside 1-3 are ignored.
func (d *Display) SetTier(level int, on bool) {
	switch level {
	case 1:
		d.ShowH1 = on
	case 2:
		d.ShowH2 = on
	case 3:
		d.ShowH3 = on
	default:
		return
	}
	if on {
		d.EnableHeaderMenu = true
	}
}

// Visible reports whether headings of the given level appear in the menu.
// Levels 4-6 are never shown regardless of settings.
func (d Display) Visible(level int) bool {
	switch level {
	case 1:
		return d.ShowH1
	case 2:
		return d.ShowH2
	case 3:
		return d.ShowH3
	default:
		return false
	}
}

// Normalize repairs a loaded record so the coupling invariant holds. A
// persisted tier flag wins over a persisted disable: any visible tier
// implies the menu is enabled.
func (d *Display) Normalize() {
	if d.ShowH1 || d.ShowH2 || d.ShowH3 {
		d.EnableHeaderMenu = true
	}
	if !d.EnableHeaderMenu {
		d.ShowH1, d.ShowH2, d.ShowH3 = false, false, false
	}
}

func restore(prev *bool) bool {
	if prev == nil {
		return true
	}
	return *prev
}

func boolPtr(v bool) *bool {
	return &v
}
