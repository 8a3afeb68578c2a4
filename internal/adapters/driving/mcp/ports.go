package mcp

import (
	"github.com/custodia-labs/mimeview/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Viewer resolves MIME types and files to handlers.
	Viewer driving.ViewerService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Viewer == nil {
		return ErrMissingViewerService
	}
	return nil
}
