package file

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/logger"
)

// DefaultReloadInterval is the minimum spacing between two reloads.
const DefaultReloadInterval = 250 * time.Millisecond

// Watcher reloads the configuration when its file changes, or when a
// YAML file changes in a directory registered with AddDir.
// The directory is watched rather than the file so editors that replace
// the file on save are still seen.
type Watcher struct {
	store   *ConfigStore
	fsw     *fsnotify.Watcher
	limiter *rate.Limiter
	dirs    []string
}

// NewWatcher starts watching the store's directory. Events that arrive
// before Run is called are queued.
func NewWatcher(store *ConfigStore, interval time.Duration) (*Watcher, error) {
	if interval <= 0 {
		interval = DefaultReloadInterval
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(store.Dir()); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		store:   store,
		fsw:     fsw,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}, nil
}

// AddDir also reloads on changes to *.yaml and *.yml files in dir.
// dir need not exist yet; if it sits inside the config directory it is
// picked up when created.
func (w *Watcher) AddDir(dir string) error {
	dir = filepath.Clean(dir)
	if err := w.fsw.Add(dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	w.dirs = append(w.dirs, dir)
	return nil
}

// Run delivers each successfully reloaded configuration to onChange.
// Unparseable files are logged and skipped. Run blocks until ctx is
// cancelled and closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, onChange func(domain.ViewerConfig)) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.follow(event)
			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}

			cfg, err := w.store.Load()
			if err != nil {
				logger.Error("reloading %s: %v", w.store.Path(), err)
				continue
			}
			logger.Debug("config changed (%s), reloading", event.Op)
			onChange(cfg)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error("watching %s: %v", w.store.Dir(), err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !(event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
		return false
	}

	name := filepath.Clean(event.Name)
	switch {
	case name == filepath.Clean(w.store.Path()):
		return true
	case slices.Contains(w.dirs, name):
		return true
	case slices.Contains(w.dirs, filepath.Dir(name)):
		ext := strings.ToLower(filepath.Ext(name))
		return ext == ".yaml" || ext == ".yml"
	}
	return false
}

// follow starts watching a registered directory once it is created.
func (w *Watcher) follow(event fsnotify.Event) {
	name := filepath.Clean(event.Name)
	if !event.Has(fsnotify.Create) || !slices.Contains(w.dirs, name) {
		return
	}
	if err := w.fsw.Add(name); err != nil {
		logger.Error("watching %s: %v", name, err)
	}
}
