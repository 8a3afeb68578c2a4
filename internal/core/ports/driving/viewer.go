package driving

import (
	"context"

	"github.com/custodia-labs/mimeview/internal/core/domain"
)

// ViewerService maps files and MIME types to the handler that renders them.
type ViewerService interface {
	// Resolve returns the handler for a reported MIME type.
	// ok is false when the host should fall back to download.
	Resolve(mimeType string) (d *domain.HandlerDescriptor, ok bool)

	// Handlers returns the registered handlers in resolution order.
	Handlers() []domain.HandlerDescriptor

	// Inspect detects a file's type and resolves it without rendering.
	Inspect(ctx context.Context, path string) (*domain.Resolution, error)

	// Open detects, resolves and renders a file and records the open.
	// An unclaimed file is not an error: the result carries a fallback.
	Open(ctx context.Context, path string) (*domain.OpenResult, error)

	// History returns recently opened files, newest first.
	History(ctx context.Context, limit int) ([]domain.OpenEvent, error)
}
