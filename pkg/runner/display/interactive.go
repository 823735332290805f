package display

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"

	"tableflip.dev/outline/pkg/settings"
)

// Interactive toggles display settings through a prompt loop. Each pick
// flips one switch and persists immediately; "done" leaves the loop.
type Interactive struct {
	Store *settings.Store
}

type choice struct {
	Name  string
	State string
	done  bool
	apply func(*settings.Display)
}

func (i *Interactive) Do(ctx context.Context) error {
	if i.Store == nil {
		return fmt.Errorf("display: no settings store")
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .State | green }}",
		Inactive: "   {{ .Name }} {{ .State | cyan }}",
		Selected: "{{ .Name | bold }}",
	}

	index := 0
	for {
		d, err := i.Store.Display()
		if err != nil {
			return err
		}

		choices := []choice{
			{Name: "header menu", State: onOff(d.EnableHeaderMenu), apply: func(d *settings.Display) {
				d.SetMenuEnabled(!d.EnableHeaderMenu)
			}},
			{Name: "show h1", State: onOff(d.ShowH1), apply: func(d *settings.Display) {
				d.SetTier(1, !d.ShowH1)
			}},
			{Name: "show h2", State: onOff(d.ShowH2), apply: func(d *settings.Display) {
				d.SetTier(2, !d.ShowH2)
			}},
			{Name: "show h3", State: onOff(d.ShowH3), apply: func(d *settings.Display) {
				d.SetTier(3, !d.ShowH3)
			}},
			{Name: "done", done: true},
		}

		prompt := promptui.Select{
			HideHelp:  true,
			Label:     "Display Settings",
			Items:     choices,
			Templates: templates,
			Size:      len(choices),
			CursorPos: index,
		}

		picked, _, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("display: prompt failed: %w", err)
		}
		index = picked

		if choices[picked].done {
			return nil
		}

		choices[picked].apply(&d)
		if err := i.Store.SaveDisplay(d); err != nil {
			return err
		}
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
