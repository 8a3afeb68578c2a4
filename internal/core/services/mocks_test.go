package services

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/custodia-labs/mimeview/internal/core/domain"
)

// mockDetector reports MIME types by file extension.
type mockDetector struct {
	byExt map[string]string
	err   error
}

func (m *mockDetector) Detect(_ context.Context, path string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if t, ok := m.byExt[filepath.Ext(path)]; ok {
		return t, nil
	}
	return "application/octet-stream", nil
}

func newMockDetector() *mockDetector {
	return &mockDetector{byExt: map[string]string{
		".mp4":  "video/mp4",
		".mkv":  "video/x-matroska",
		".png":  "image/png",
		".txt":  "text/plain; charset=utf-8",
		".bin":  "application/octet-stream",
		".webm": "video/webm",
	}}
}

// failingHistory rejects every write.
type failingHistory struct{}

var errHistoryDown = errors.New("history unavailable")

func (failingHistory) Record(context.Context, domain.OpenEvent) error {
	return errHistoryDown
}

func (failingHistory) List(context.Context, int) ([]domain.OpenEvent, error) {
	return nil, errHistoryDown
}

// recordingRenderer captures what it was asked to render.
type recordingRenderer struct {
	got []domain.FileRef
	err error
}

func (r *recordingRenderer) Render(_ context.Context, file domain.FileRef) (*domain.View, error) {
	r.got = append(r.got, file)
	if r.err != nil {
		return nil, r.err
	}
	return &domain.View{Title: file.Name, ContentType: "text/html", Body: []byte("<p>ok</p>")}, nil
}

// nilViewRenderer succeeds without producing a view.
type nilViewRenderer struct{}

func (nilViewRenderer) Render(context.Context, domain.FileRef) (*domain.View, error) {
	return nil, nil
}
