// Package headings prints a document's extracted outline.
package headings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tableflip.dev/outline/pkg/heading"
	"tableflip.dev/outline/pkg/printers"
)

// Headings prints the outline of one markdown file.
type Headings struct {
	Path      string
	ShowLines bool
	MaxLevel  int
}

func (n *Headings) Do(ctx context.Context) error {
	if n.Path == "" {
		return errors.New("headings: no file given")
	}
	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("headings: %w", err)
	}

	extracted := heading.Extract(string(data))
	if n.MaxLevel > 0 {
		kept := extracted[:0]
		for _, h := range extracted {
			if h.Level <= n.MaxLevel {
				kept = append(kept, h)
			}
		}
		extracted = kept
	}

	pp := printers.PrettyPrint{ShowLines: n.ShowLines}
	fmt.Println("")

	base := strings.TrimSuffix(filepath.Base(n.Path), filepath.Ext(n.Path))
	pp.TitleWithCount(base, len(extracted))
	pp.Outline(extracted...)

	return nil
}
