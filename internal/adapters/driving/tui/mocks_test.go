package tui

import (
	"context"
	"path/filepath"

	"github.com/custodia-labs/mimeview/internal/core/domain"
)

// mockViewerService resolves files by extension.
type mockViewerService struct {
	handlers []domain.HandlerDescriptor
}

func newMockViewer() *mockViewerService {
	return &mockViewerService{handlers: []domain.HandlerDescriptor{
		{ID: "simplevideos", Group: "media", MIMETypes: []string{"video/mp4"}},
		{ID: "builtin-text", Group: "text", MIMETypes: []string{"text/plain"}},
	}}
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

func (m *mockViewerService) Inspect(_ context.Context, path string) (*domain.Resolution, error) {
	mimeType := map[string]string{
		".mp4": "video/mp4",
		".txt": "text/plain",
	}[filepath.Ext(path)]
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	res := &domain.Resolution{File: domain.FileRef{Path: path, Name: filepath.Base(path), MIMEType: mimeType}}
	if d, ok := m.Resolve(mimeType); ok {
		res.Handler = d
	} else {
		res.Fallback = domain.FallbackDownload
	}
	return res, nil
}

func (m *mockViewerService) Open(_ context.Context, _ string) (*domain.OpenResult, error) {
	return nil, nil
}

func (m *mockViewerService) History(_ context.Context, _ int) ([]domain.OpenEvent, error) {
	return nil, nil
}
