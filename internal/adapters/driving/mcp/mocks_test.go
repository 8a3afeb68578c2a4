package mcp

import (
	"context"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/core/ports/driving"
)

var _ driving.ViewerService = (*mockViewerService)(nil)

// mockViewerService is a mock implementation of driving.ViewerService.
type mockViewerService struct {
	handlers   []domain.HandlerDescriptor
	resolution *domain.Resolution
	history    []domain.OpenEvent
	err        error
}

func (m *mockViewerService) Resolve(mimeType string) (*domain.HandlerDescriptor, bool) {
	for i := range m.handlers {
		if m.handlers[i].Claims(mimeType) {
			return &m.handlers[i], true
		}
	}
	return nil, false
}

func (m *mockViewerService) Handlers() []domain.HandlerDescriptor {
	return m.handlers
}

func (m *mockViewerService) Inspect(_ context.Context, _ string) (*domain.Resolution, error) {
	return m.resolution, m.err
}

func (m *mockViewerService) Open(_ context.Context, _ string) (*domain.OpenResult, error) {
	return nil, m.err
}

func (m *mockViewerService) History(_ context.Context, _ int) ([]domain.OpenEvent, error) {
	return m.history, m.err
}

func testHandlers() []domain.HandlerDescriptor {
	return []domain.HandlerDescriptor{
		{
			ID:        "simplevideos",
			Group:     "media",
			MIMETypes: []string{"video/mp4", "video/webm"},
			Aliases:   map[string]string{"video/x-matroska": "video/webm"},
		},
		{
			ID:        "builtin-text",
			Group:     "text",
			MIMETypes: []string{"text/plain"},
		},
	}
}
