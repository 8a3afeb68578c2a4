package domain

import (
	"context"
	"time"
)

// Renderer is the render capability carried by a handler descriptor.
// Given a file reference it produces a displayable view.
type Renderer interface {
	Render(ctx context.Context, file FileRef) (*View, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, file FileRef) (*View, error)

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, file FileRef) (*View, error) {
	return f(ctx, file)
}

// FileRef identifies a file the viewer was asked to display.
type FileRef struct {
	// Path is the local filesystem path.
	Path string
	// Name is the base name shown to the user.
	Name string
	// MIMEType is the normalised reported type (before alias resolution).
	MIMEType string
	// Size is the file size in bytes.
	Size int64
	// ModTime is the last modification time.
	ModTime time.Time
}

// View is a rendered, displayable document.
type View struct {
	// HandlerID is the descriptor that produced the view.
	HandlerID string
	// Title is shown in the viewer chrome.
	Title string
	// ContentType of Body, usually "text/html; charset=utf-8".
	ContentType string
	// Body is the rendered document.
	Body []byte
}
