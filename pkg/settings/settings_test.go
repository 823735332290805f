package settings

import (
	"encoding/json"
	"testing"
)

func TestDisableThenEnableRestoresTiers(t *testing.T) {
	d := Defaults()
	d.SetTier(1, false)
	d.SetTier(3, false)
	// Snapshot should capture {false, true, false}.
	d.SetMenuEnabled(false)

	if d.EnableHeaderMenu || d.ShowH1 || d.ShowH2 || d.ShowH3 {
		t.Fatalf("disable should force every flag off: %#v", d)
	}

	d.SetMenuEnabled(true)
	if !d.EnableHeaderMenu {
		t.Fatalf("expected menu enabled")
	}
	if d.ShowH1 || !d.ShowH2 || d.ShowH3 {
		t.Fatalf("expected snapshot {false,true,false} restored, got %#v", d)
	}
}

func TestEnableWithoutSnapshotDefaultsAllTiers(t *testing.T) {
	d := Display{}
	d.SetMenuEnabled(true)
	if !d.ShowH1 || !d.ShowH2 || !d.ShowH3 {
		t.Fatalf("expected all tiers visible without a snapshot, got %#v", d)
	}
}

func TestRepeatedDisableKeepsSnapshot(t *testing.T) {
	d := Defaults()
	d.SetTier(2, false)
	d.SetMenuEnabled(false)
	// A second disable while already off must not overwrite the snapshot
	// with the forced-false flags.
	d.SetMenuEnabled(false)
	d.SetMenuEnabled(true)
	if !d.ShowH1 || d.ShowH2 || !d.ShowH3 {
		t.Fatalf("snapshot clobbered by repeated disable: %#v", d)
	}
}

func TestTierOnForcesMenuEnabled(t *testing.T) {
	d := Display{}
	d.SetMenuEnabled(false)
	d.SetTier(2, true)
	if !d.EnableHeaderMenu {
		t.Fatalf("turning a tier on must re-enable the menu: %#v", d)
	}
	if !d.ShowH2 {
		t.Fatalf("tier 2 should be visible")
	}
}

func TestTierOffLeavesMenuEnabled(t *testing.T) {
	d := Defaults()
	d.SetTier(1, false)
	d.SetTier(2, false)
	d.SetTier(3, false)
	if !d.EnableHeaderMenu {
		t.Fatalf("hiding every tier should not disable the menu itself")
	}
}

func TestVisibleSkipsDeepLevels(t *testing.T) {
	d := Defaults()
	for level := 4; level <= 6; level++ {
		if d.Visible(level) {
			t.Fatalf("level %d must never be visible", level)
		}
	}
	d.ShowH1 = false
	if d.Visible(1) {
		t.Fatalf("hidden tier reported visible")
	}
	if !d.Visible(2) || !d.Visible(3) {
		t.Fatalf("expected tiers 2 and 3 visible")
	}
}

func TestNormalizeTierWinsOverDisable(t *testing.T) {
	d := Display{EnableHeaderMenu: false, ShowH2: true}
	d.Normalize()
	if !d.EnableHeaderMenu {
		t.Fatalf("a persisted visible tier implies the menu is enabled")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := Open(t.TempDir())

	got, err := s.Display()
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if got != Defaults() {
		t.Fatalf("expected defaults on first load, got %#v", got)
	}

	got.SetTier(3, false)
	got.SetMenuEnabled(false)
	if err := s.SaveDisplay(got); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := s.Display()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.EnableHeaderMenu || loaded.ShowH1 || loaded.ShowH3 {
		t.Fatalf("persisted disable lost: %#v", loaded)
	}
	if loaded.PreviousShowH1 == nil || !*loaded.PreviousShowH1 {
		t.Fatalf("snapshot should survive the round trip: %#v", loaded)
	}
	if loaded.PreviousShowH3 == nil || *loaded.PreviousShowH3 {
		t.Fatalf("snapshot should record tier 3 hidden: %#v", loaded)
	}
}

func TestStoreMergesDefaultsUnderPartialRecord(t *testing.T) {
	s := Open(t.TempDir())

	// A record written by an older build that only knew about one key.
	if err := s.d.Write(displayKey, []byte(`{"showH2":false}`)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := s.Display()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ShowH2 {
		t.Fatalf("persisted value must win: %#v", got)
	}
	if !got.EnableHeaderMenu || !got.ShowH1 || !got.ShowH3 {
		t.Fatalf("absent keys must keep defaults: %#v", got)
	}
}

func TestDisplaySerializesFlat(t *testing.T) {
	d := Defaults()
	d.SetMenuEnabled(false)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"enableHeaderMenu", "showH1", "showH2", "showH3", "previousShowH1"} {
		if _, ok := flat[key]; !ok {
			t.Fatalf("expected key %q in persisted record: %s", key, data)
		}
	}
}
