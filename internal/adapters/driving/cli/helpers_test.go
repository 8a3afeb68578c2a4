package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mimeview/internal/core/domain"
)

// mockViewerService implements driving.ViewerService for CLI tests.
type mockViewerService struct {
	handlers []domain.HandlerDescriptor
	history  []domain.OpenEvent
	err      error
}

func (m *mockViewerService) Resolve(mimeType string) (*domain.HandlerDescriptor, bool) {
	mimeType = domain.NormaliseMIMEType(mimeType)
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
	if m.err != nil {
		return nil, m.err
	}
	mimeType := "application/octet-stream"
	if filepath.Ext(path) == ".mp4" {
		mimeType = "video/mp4"
	}
	res := &domain.Resolution{
		File: domain.FileRef{Path: path, Name: filepath.Base(path), MIMEType: mimeType, Size: 3},
	}
	if d, ok := m.Resolve(mimeType); ok {
		res.Handler = d
	} else {
		res.Fallback = domain.FallbackDownload
	}
	return res, nil
}

func (m *mockViewerService) Open(ctx context.Context, path string) (*domain.OpenResult, error) {
	res, err := m.Inspect(ctx, path)
	if err != nil {
		return nil, err
	}
	out := &domain.OpenResult{Resolution: *res, EventID: "evt-1"}
	if res.Matched() {
		out.View = &domain.View{HandlerID: res.Handler.ID, Title: res.File.Name, Body: []byte("<video></video>")}
	}
	return out, nil
}

func (m *mockViewerService) History(_ context.Context, limit int) ([]domain.OpenEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.history) > limit {
		return m.history[:limit], nil
	}
	return m.history, nil
}

// setupTestServices installs a mock viewer and returns a cleanup function.
func setupTestServices() func() {
	original := viewerService
	viewerService = &mockViewerService{
		handlers: []domain.HandlerDescriptor{
			{
				ID:        "simplevideos",
				Group:     "media",
				MIMETypes: []string{"video/mp4", "video/webm"},
				Aliases:   map[string]string{"video/x-matroska": "video/webm"},
			},
			{ID: "builtin-text", Group: "text", MIMETypes: []string{"text/plain"}},
		},
		history: []domain.OpenEvent{
			{ID: "2", Path: "/clips/b.pdf", MIMEType: "application/pdf", OpenedAt: time.Now()},
			{ID: "1", Path: "/clips/a.mp4", MIMEType: "video/mp4", HandlerID: "simplevideos", OpenedAt: time.Now()},
		},
	}
	return func() { viewerService = original }
}

// setFailingViewer installs a viewer whose I/O operations fail.
func setFailingViewer() func() {
	original := viewerService
	viewerService = &mockViewerService{err: errors.New("disk on fire")}
	return func() { viewerService = original }
}

// run executes rootCmd with args and returns combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores flag defaults between executions of the shared rootCmd.
func resetFlags() {
	handlersJSON = false
	openOutput = ""
	historyLimit = 20
	versionShort = false
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

func writeFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0600))
	return path
}
