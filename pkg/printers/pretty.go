package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/outline/pkg/heading"
	"tableflip.dev/outline/pkg/settings"
)

type PrettyPrint struct {
	ShowLines bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" heading")
	default:
		_, _ = c.Println(" headings")
	}
}

// Outline prints an extracted heading list, indented by level.
func (pp *PrettyPrint) Outline(headings ...heading.Heading) {
	if len(headings) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, h := range headings {
		text := strings.Repeat("  ", h.Level-1) + h.Text
		if pp.ShowLines {
			tbl.AddRow(y.Sprintf("%4d", h.Line+1), text)
		} else {
			tbl.AddRow(text)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Display prints the persisted display settings as an on/off table.
func (pp *PrettyPrint) Display(d settings.Display) {
	tbl := uitable.New()
	tbl.Separator = "  "

	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("Setting"), bold.Sprint("State"))
	tbl.AddRow("header menu", pp.onOff(d.EnableHeaderMenu))
	tbl.AddRow("show h1", pp.onOff(d.ShowH1))
	tbl.AddRow("show h2", pp.onOff(d.ShowH2))
	tbl.AddRow("show h3", pp.onOff(d.ShowH3))

	_, _ = fmt.Fprintln(color.Output, tbl)

	if !d.EnableHeaderMenu && d.PreviousShowH1 != nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("tier snapshot held for re-enable: h1=%s h2=%s h3=%s\n",
			pp.onOffPtr(d.PreviousShowH1),
			pp.onOffPtr(d.PreviousShowH2),
			pp.onOffPtr(d.PreviousShowH3))
	}
}

func (pp *PrettyPrint) onOff(v bool) string {
	if v {
		return color.New(color.FgGreen).Sprint("on")
	}
	return color.New(color.Faint).Sprint("off")
}

func (pp *PrettyPrint) onOffPtr(v *bool) string {
	if v == nil {
		return "on"
	}
	if *v {
		return "on"
	}
	return "off"
}
