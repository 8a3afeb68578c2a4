// Command mimeview resolves files to the handler that renders them.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/mimeview/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mimeview/internal/adapters/driven/detect"
	"github.com/custodia-labs/mimeview/internal/adapters/driven/manifest"
	"github.com/custodia-labs/mimeview/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/mimeview/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/mimeview/internal/adapters/driving/cli"
	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/core/ports/driven"
	"github.com/custodia-labs/mimeview/internal/core/services"
	"github.com/custodia-labs/mimeview/internal/logger"
	"github.com/custodia-labs/mimeview/internal/renderers"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(wire)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// wire builds the viewer and its adapters from the config directory.
func wire(opts cli.Options) (*cli.Services, error) {
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}

	cfg, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", store.Path(), err)
	}
	if cfg.Verbose && !opts.Verbose {
		logger.SetVerbose(true)
	}

	manifests := manifest.NewDir(filepath.Join(store.Dir(), manifest.DirName))
	builder := services.NewRegistryBuilder(renderers.DefaultCatalogue(), manifests)
	registry, err := builder.Build(cfg)
	if err != nil {
		return nil, fmt.Errorf("building handler registry: %w", err)
	}

	history, closeHistory, err := openHistory(store.Dir(), cfg.History)
	if err != nil {
		return nil, err
	}

	viewer := services.NewViewerService(registry, detect.New(), history)

	watch := func(ctx context.Context) error {
		w, err := file.NewWatcher(store, file.DefaultReloadInterval)
		if err != nil {
			return fmt.Errorf("watching %s: %w", store.Dir(), err)
		}
		if err := w.AddDir(manifests.Path()); err != nil {
			w.Close()
			return fmt.Errorf("watching %s: %w", manifests.Path(), err)
		}
		return w.Run(ctx, func(cfg domain.ViewerConfig) {
			reg, err := builder.Build(cfg)
			if err != nil {
				logger.Error("rebuilding handler registry: %v", err)
				return
			}
			viewer.Reload(reg)
		})
	}

	return &cli.Services{
		Viewer: viewer,
		Watch:  watch,
		Close:  closeHistory,
	}, nil
}

// openHistory opens the configured history backend under configDir/data.
func openHistory(configDir string, cfg domain.HistoryConfig) (driven.OpenHistoryStore, func() error, error) {
	switch cfg.Backend {
	case domain.HistoryMemory:
		return memory.NewOpenHistoryStore(), func() error { return nil }, nil
	case domain.HistorySQLite, "":
		store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
		if err != nil {
			return nil, nil, fmt.Errorf("opening history: %w", err)
		}
		logger.Debug("history database: %s", store.Path())
		return store.OpenHistoryStore(), store.Close, nil
	default:
		return nil, nil, fmt.Errorf("history backend %q: %w", cfg.Backend, domain.ErrUnsupportedType)
	}
}
