package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/core/ports/driven"
)

// openHistoryStore implements driven.OpenHistoryStore.
type openHistoryStore struct {
	store *Store
}

var _ driven.OpenHistoryStore = (*openHistoryStore)(nil)

// Record stores an open event. Event IDs are unique.
func (s *openHistoryStore) Record(ctx context.Context, event domain.OpenEvent) error {
	if event.ID == "" {
		return domain.ErrInvalidInput
	}

	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO open_events (id, path, mime_type, handler_id, opened_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, event.ID, event.Path, event.MIMEType, event.HandlerID, event.OpenedAt.UTC().UnixNano())
	if err != nil {
		return fmt.Errorf("recording open event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("recording open event: %w", err)
	}
	if n == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

// List returns up to limit events, newest first. A limit of zero or less
// returns every event.
func (s *openHistoryStore) List(ctx context.Context, limit int) ([]domain.OpenEvent, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, path, mime_type, handler_id, opened_at
		FROM open_events
		ORDER BY opened_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying open events: %w", err)
	}
	defer rows.Close()

	var events []domain.OpenEvent //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			event    domain.OpenEvent
			openedAt int64
		)
		if err := rows.Scan(&event.ID, &event.Path, &event.MIMEType, &event.HandlerID, &openedAt); err != nil {
			return nil, fmt.Errorf("scanning open event: %w", err)
		}
		event.OpenedAt = time.Unix(0, openedAt).UTC()
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating open events: %w", err)
	}

	return events, nil
}
