package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/outline/pkg/runner/headings"
)

func addHeadings(topLevel *cobra.Command) {
	showLines := false
	maxLevel := 0

	cmd := &cobra.Command{
		Use:   "headings <file>",
		Short: "print the heading outline of a markdown file",
		Example: `
outline headings README.md
outline headings --lines --max-level 3 notes.md
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := headings.Headings{
				Path:      args[0],
				ShowLines: showLines,
				MaxLevel:  maxLevel,
			}
			return h.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&showLines, "lines", "l", false, "Show line numbers.")
	cmd.Flags().IntVar(&maxLevel, "max-level", 0, "Only include headings up to this level (0 keeps all).")

	topLevel.AddCommand(cmd)
}
