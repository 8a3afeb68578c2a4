package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/core/ports/driven"
	"github.com/custodia-labs/mimeview/internal/core/ports/driving"
	"github.com/custodia-labs/mimeview/internal/logger"
)

// Ensure ViewerService implements the interface.
var _ driving.ViewerService = (*ViewerService)(nil)

// snapshot wraps a published registry. A registry is never mutated after
// it is stored here; Reload publishes a new one instead.
type snapshot struct {
	registry driven.HandlerRegistry
}

// ViewerService maps files to the handler that renders them.
type ViewerService struct {
	current  atomic.Pointer[snapshot]
	detector driven.MIMEDetector
	history  driven.OpenHistoryStore

	now   func() time.Time
	newID func() string
}

// NewViewerService creates a viewer over a populated registry.
// history may be nil, in which case opens are not recorded.
func NewViewerService(
	registry driven.HandlerRegistry,
	detector driven.MIMEDetector,
	history driven.OpenHistoryStore,
) *ViewerService {
	s := &ViewerService{
		detector: detector,
		history:  history,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	s.current.Store(&snapshot{registry: registry})
	return s
}

// Reload publishes a new registry. Queries already in flight keep using
// the registry they started with.
func (s *ViewerService) Reload(registry driven.HandlerRegistry) {
	s.current.Store(&snapshot{registry: registry})
	logger.Info("handler registry reloaded: %d handler(s)", len(registry.Handlers()))
}

func (s *ViewerService) registry() driven.HandlerRegistry {
	return s.current.Load().registry
}

// Resolve returns the handler for a reported MIME type. The type is
// normalised first; malformed input never matches.
func (s *ViewerService) Resolve(mimeType string) (*domain.HandlerDescriptor, bool) {
	normalised := domain.NormaliseMIMEType(mimeType)
	if normalised == "" {
		logger.Debug("resolve %q: malformed MIME type", mimeType)
		return nil, false
	}

	d, ok := s.registry().Resolve(normalised)
	if !ok {
		logger.Debug("resolve %s: no handler", normalised)
		return nil, false
	}
	logger.Debug("resolve %s: %s", normalised, d.ID)
	return d, true
}

// Handlers returns the registered handlers in resolution order.
func (s *ViewerService) Handlers() []domain.HandlerDescriptor {
	ds := s.registry().Handlers()
	out := make([]domain.HandlerDescriptor, len(ds))
	for i, d := range ds {
		out[i] = *d
	}
	return out
}

// Inspect detects the file's type and resolves it without rendering.
func (s *ViewerService) Inspect(ctx context.Context, path string) (*domain.Resolution, error) {
	if path == "" {
		return nil, domain.ErrInvalidInput
	}
	if s.detector == nil {
		return nil, fmt.Errorf("mime detector: %w", domain.ErrInvalidInput)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.ErrInvalidInput)
	}

	detected, err := s.detector.Detect(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("detecting type of %s: %w", path, err)
	}

	res := &domain.Resolution{
		File: domain.FileRef{
			Path:     path,
			Name:     filepath.Base(path),
			MIMEType: domain.NormaliseMIMEType(detected),
			Size:     info.Size(),
			ModTime:  info.ModTime(),
		},
	}

	if d, ok := s.Resolve(detected); ok {
		res.Handler = d
	} else {
		res.Fallback = domain.FallbackDownload
	}
	return res, nil
}

// Open detects, resolves and renders the file, then records the open.
// An unclaimed file yields a download fallback and no error.
func (s *ViewerService) Open(ctx context.Context, path string) (*domain.OpenResult, error) {
	res, err := s.Inspect(ctx, path)
	if err != nil {
		return nil, err
	}

	result := &domain.OpenResult{Resolution: *res}
	if res.Matched() {
		view, err := s.render(ctx, res)
		if err != nil {
			return nil, err
		}
		result.View = view
	}

	result.EventID = s.record(ctx, res)
	return result, nil
}

// render runs the matched handler's renderer. A descriptor may be
// registered without one, and such a handler cannot open files.
func (s *ViewerService) render(ctx context.Context, res *domain.Resolution) (*domain.View, error) {
	d := res.Handler
	if d.Renderer == nil {
		return nil, fmt.Errorf("handler %s has no renderer: %w", d.ID, domain.ErrInvalidInput)
	}
	view, err := d.Renderer.Render(ctx, res.File)
	if err != nil {
		return nil, fmt.Errorf("rendering %s with %s: %w", res.File.Path, d.ID, err)
	}
	if view == nil {
		return nil, fmt.Errorf("rendering %s with %s: empty view: %w", res.File.Path, d.ID, domain.ErrInvalidInput)
	}
	view.HandlerID = d.ID
	return view, nil
}

// record stores the open in history. Failures are logged and do not
// fail the open.
func (s *ViewerService) record(ctx context.Context, res *domain.Resolution) string {
	if s.history == nil {
		return ""
	}

	event := domain.OpenEvent{
		ID:       s.newID(),
		Path:     res.File.Path,
		MIMEType: res.File.MIMEType,
		OpenedAt: s.now().UTC(),
	}
	if res.Handler != nil {
		event.HandlerID = res.Handler.ID
	}

	if err := s.history.Record(ctx, event); err != nil {
		logger.Warn("recording open of %s: %v", res.File.Path, err)
		return ""
	}
	return event.ID
}

// History returns recently opened files, newest first.
func (s *ViewerService) History(ctx context.Context, limit int) ([]domain.OpenEvent, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx, limit)
}
