// Package memory provides in-memory implementations of the driven storage
// ports. They keep state for the process lifetime only.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/core/ports/driven"
)

// Ensure OpenHistoryStore implements the interface.
var _ driven.OpenHistoryStore = (*OpenHistoryStore)(nil)

// OpenHistoryStore is an in-memory implementation of driven.OpenHistoryStore.
type OpenHistoryStore struct {
	mu     sync.RWMutex
	events []domain.OpenEvent
	ids    map[string]struct{}
}

// NewOpenHistoryStore creates a new in-memory history store.
func NewOpenHistoryStore() *OpenHistoryStore {
	return &OpenHistoryStore{
		ids: make(map[string]struct{}),
	}
}

// Record stores an event.
func (s *OpenHistoryStore) Record(_ context.Context, event domain.OpenEvent) error {
	if event.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[event.ID]; ok {
		return domain.ErrAlreadyExists
	}
	s.ids[event.ID] = struct{}{}
	s.events = append(s.events, event)
	return nil
}

// List returns up to limit events, newest first. Events opened at the same
// instant are returned in reverse recording order.
func (s *OpenHistoryStore) List(_ context.Context, limit int) ([]domain.OpenEvent, error) {
	s.mu.RLock()
	out := make([]domain.OpenEvent, 0, len(s.events))
	for i := len(s.events) - 1; i >= 0; i-- {
		out = append(out, s.events[i])
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OpenedAt.After(out[j].OpenedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
