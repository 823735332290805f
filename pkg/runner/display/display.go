// Package display inspects and mutates the persisted overlay settings.
package display

import (
	"context"
	"fmt"

	"tableflip.dev/outline/pkg/printers"
	"tableflip.dev/outline/pkg/settings"
)

// Show prints the persisted display settings.
type Show struct {
	Store *settings.Store
}

func (s *Show) Do(ctx context.Context) error {
	if s.Store == nil {
		return fmt.Errorf("display: no settings store")
	}
	d, err := s.Store.Display()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Display Settings")
	pp.Display(d)
	return nil
}

// Toggle flips one switch and persists the result. Menu and tier mutations
// go through the record's own setters so the disable-snapshot and
// tier-implies-menu coupling always hold.
type Toggle struct {
	Store *settings.Store
	Menu  bool // target the header-menu switch instead of a tier
	Tier  int  // 1..3 when Menu is false
	On    bool
}

func (t *Toggle) Do(ctx context.Context) error {
	if t.Store == nil {
		return fmt.Errorf("display: no settings store")
	}
	if !t.Menu && (t.Tier < 1 || t.Tier > 3) {
		return fmt.Errorf("display: tier %d out of range 1..3", t.Tier)
	}

	d, err := t.Store.Display()
	if err != nil {
		return err
	}
	if t.Menu {
		d.SetMenuEnabled(t.On)
	} else {
		d.SetTier(t.Tier, t.On)
	}
	if err := t.Store.SaveDisplay(d); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Display(d)
	return nil
}
