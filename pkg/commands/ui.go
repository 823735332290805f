package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/outline/pkg/runner/ui"
	"tableflip.dev/outline/pkg/settings"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui [dir]",
		Short: "open the text-based workspace",
		Example: `
outline ui
outline ui ~/notes
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := settings.Load(nil)
			if err != nil {
				return err
			}
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			i := ui.UI{Dir: dir, Store: store}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
