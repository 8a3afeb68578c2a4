// Package mcp provides an MCP (Model Context Protocol) server adapter for mimeview.
// It lets AI assistants ask which handler would render a file or MIME type.
package mcp

import "errors"

// ErrMissingViewerService is returned when the viewer service is not provided.
var ErrMissingViewerService = errors.New("mcp: viewer service is required")
