package driven

import "github.com/custodia-labs/mimeview/internal/core/domain"

// ConfigStore provides access to the viewer configuration.
// Implementations handle persistence (e.g., TOML files).
type ConfigStore interface {
	// Load reads configuration from storage. A missing file yields
	// domain.DefaultViewerConfig.
	Load() (domain.ViewerConfig, error)

	// Save persists the configuration.
	Save(cfg domain.ViewerConfig) error

	// Path returns the configuration file path.
	Path() string
}
