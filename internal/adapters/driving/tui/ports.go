// Package tui provides an interactive terminal browser for mimeview.
// It lists a directory and shows which handler would render each file.
package tui

import (
	"github.com/custodia-labs/mimeview/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Viewer resolves files to handlers.
	Viewer driving.ViewerService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Viewer == nil {
		return ErrMissingViewerService
	}
	return nil
}
