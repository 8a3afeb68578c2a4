// Package builtins registers the host viewer's own handlers.
package builtins

import (
	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/core/ports/driven"
	"github.com/custodia-labs/mimeview/internal/renderers/image"
	"github.com/custodia-labs/mimeview/internal/renderers/text"
	"github.com/custodia-labs/mimeview/internal/renderers/video"
)

// Built-in handler IDs.
const (
	VideoID  = "builtin-video"
	ImagesID = "builtin-images"
	TextID   = "builtin-text"
)

// Descriptors returns the built-in handlers in registration order.
func Descriptors() []*domain.HandlerDescriptor {
	return []*domain.HandlerDescriptor{
		{
			ID:    VideoID,
			Group: "media",
			MIMETypes: []string{
				"video/mp4",
				"video/webm",
				"video/ogg",
				"video/quicktime",
			},
			Renderer: video.New(video.WithPlayer(video.PlayerBuiltin)),
		},
		{
			ID:    ImagesID,
			Group: "media",
			MIMETypes: []string{
				"image/png",
				"image/jpeg",
				"image/gif",
				"image/webp",
				"image/svg+xml",
				"image/bmp",
			},
			Renderer: image.New(),
		},
		{
			ID:    TextID,
			Group: "text",
			MIMETypes: []string{
				"text/plain",
				"text/markdown",
				"text/csv",
				"application/json",
				"text/x-go",
			},
			Renderer: text.New(),
		},
	}
}

// RegisterDefaults inserts the built-in handlers at normal priority.
// Call this before any plugin so overrides land ahead of them.
func RegisterDefaults(r driven.HandlerRegistry) error {
	for _, d := range Descriptors() {
		if err := r.Insert(d, domain.PriorityNormal); err != nil {
			return err
		}
	}
	return nil
}
