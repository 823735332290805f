// Package ui runs the interactive terminal workspace.
package ui

import (
	"context"
	"fmt"

	"tableflip.dev/outline/pkg/host"
	"tableflip.dev/outline/pkg/settings"
	"tableflip.dev/outline/pkg/tui/app"
)

// UI launches the TUI over a workspace directory.
type UI struct {
	Dir   string
	Store *settings.Store
}

func (u *UI) Do(ctx context.Context) error {
	ws, err := host.LoadWorkspace(u.Dir)
	if err != nil {
		return err
	}
	if err := app.Run(ws, u.Store); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
