package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/outline/pkg/runner/display"
	"tableflip.dev/outline/pkg/settings"
)

func addSettings(topLevel *cobra.Command) {
	interactive := false

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "show or change overlay display settings",
		Example: `
outline settings
outline settings --interactive
outline settings enable
outline settings hide 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := settings.Load(nil)
			if err != nil {
				return err
			}
			if interactive {
				i := display.Interactive{Store: store}
				return i.Do(context.Background())
			}
			s := display.Show{Store: store}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Toggle settings through a prompt.")

	addMenuToggle(cmd, "enable", "turn the header menu on", true)
	addMenuToggle(cmd, "disable", "turn the header menu off, remembering the tiers", false)
	addTierToggle(cmd, "show", "show a heading tier in the menu", true)
	addTierToggle(cmd, "hide", "hide a heading tier from the menu", false)

	topLevel.AddCommand(cmd)
}

func addMenuToggle(parent *cobra.Command, use, short string, on bool) {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := settings.Load(nil)
			if err != nil {
				return err
			}
			t := display.Toggle{Store: store, Menu: true, On: on}
			return t.Do(context.Background())
		},
	}
	parent.AddCommand(cmd)
}

func addTierToggle(parent *cobra.Command, use, short string, on bool) {
	cmd := &cobra.Command{
		Use:       use + " <tier>",
		Short:     short,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"1", "2", "3"},
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			store, err := settings.Load(nil)
			if err != nil {
				return err
			}
			t := display.Toggle{Store: store, Tier: tier, On: on}
			return t.Do(context.Background())
		},
	}
	parent.AddCommand(cmd)
}
