// Package cli provides the mimeview command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mimeview/internal/core/ports/driving"
	"github.com/custodia-labs/mimeview/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Options carries the global flags to the bootstrap function.
type Options struct {
	ConfigDir string
	Verbose   bool
}

// Services are the wired application services.
type Services struct {
	Viewer driving.ViewerService
	// Watch hot-reloads the registry until ctx is done. Optional.
	Watch func(ctx context.Context) error
	// Close releases storage. Optional.
	Close func() error
}

// Bootstrap builds Services from the global flags.
type Bootstrap func(opts Options) (*Services, error)

var (
	viewerService driving.ViewerService
	watchFunc     func(ctx context.Context) error
	closeFunc     func() error
	bootstrap     Bootstrap

	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "mimeview",
	Short: "Find the handler that renders a file",
	Long: `mimeview maps a file's MIME type to the handler registered to render it.

Handlers come from the built-in set, the [[handlers]] tables in config.toml,
manifests in handlers.d/ and the simplevideos plugin. Resolution is
first-match in registry order; override handlers are placed in front.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.mimeview)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function that wires services on first use.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetViewerService sets the viewer service directly.
func SetViewerService(s driving.ViewerService) {
	viewerService = s
}

// Execute runs the root command.
func Execute() error {
	defer teardown()
	return rootCmd.Execute()
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if viewerService != nil || bootstrap == nil {
		return nil
	}

	services, err := bootstrap(Options{ConfigDir: configDir, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	viewerService = services.Viewer
	watchFunc = services.Watch
	closeFunc = services.Close
	return nil
}

func teardown() {
	if closeFunc == nil {
		return
	}
	if err := closeFunc(); err != nil {
		logger.Warn("closing storage: %v", err)
	}
	closeFunc = nil
}

// requireViewer returns the configured viewer service.
func requireViewer() (driving.ViewerService, error) {
	if viewerService == nil {
		return nil, fmt.Errorf("viewer service not configured")
	}
	return viewerService, nil
}

// startWatch runs the config watcher in the background for long-running
// commands. The returned function stops it.
func startWatch(ctx context.Context) func() {
	if watchFunc == nil {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		if err := watchFunc(ctx); err != nil && ctx.Err() == nil {
			logger.Error("config watcher stopped: %v", err)
		}
	}()
	return cancel
}
