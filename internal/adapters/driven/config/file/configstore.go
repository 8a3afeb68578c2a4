package file

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/core/ports/driven"
)

// FileName is the configuration file name inside the config directory.
const FileName = "config.toml"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Configuration is stored in config.toml within the mimeview config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	dir      string
	filePath string
}

// DefaultDir returns ~/.mimeview.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mimeview"), nil
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.mimeview/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		dir:      filepath.Clean(configDir),
		filePath: filepath.Join(configDir, FileName),
	}, nil
}

// Load reads configuration from the TOML file. A missing file yields the
// default configuration. Unknown keys are rejected so typos surface.
func (s *ConfigStore) Load() (domain.ViewerConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := domain.DefaultViewerConfig()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return domain.DefaultViewerConfig(), fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	switch cfg.History.Backend {
	case "":
		cfg.History.Backend = domain.HistorySQLite
	case domain.HistorySQLite, domain.HistoryMemory:
	default:
		return domain.DefaultViewerConfig(), fmt.Errorf("history backend %q: %w", cfg.History.Backend, domain.ErrUnsupportedType)
	}

	return cfg, nil
}

// Save writes the configuration with restricted permissions.
func (s *ConfigStore) Save(cfg domain.ViewerConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Dir returns the configuration directory.
func (s *ConfigStore) Dir() string {
	return s.dir
}
