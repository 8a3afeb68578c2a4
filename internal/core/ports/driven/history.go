package driven

import (
	"context"

	"github.com/custodia-labs/mimeview/internal/core/domain"
)

// OpenHistoryStore persists file-open events.
type OpenHistoryStore interface {
	// Record stores an event. Events with an existing ID are rejected
	// with domain.ErrAlreadyExists.
	Record(ctx context.Context, event domain.OpenEvent) error

	// List returns up to limit events, newest first.
	// A limit <= 0 returns every event.
	List(ctx context.Context, limit int) ([]domain.OpenEvent, error)
}
