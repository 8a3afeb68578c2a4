package domain

import "fmt"

// HistoryBackend selects where open events are stored.
type HistoryBackend string

const (
	// HistorySQLite stores history in the local SQLite database.
	HistorySQLite HistoryBackend = "sqlite"
	// HistoryMemory keeps history for the process lifetime only.
	HistoryMemory HistoryBackend = "memory"
)

// ViewerConfig is the user configuration loaded at startup.
type ViewerConfig struct {
	Verbose         bool                 `toml:"verbose"`
	DisableBuiltins bool                 `toml:"disable_builtins"`
	Plugins         PluginsConfig        `toml:"plugins"`
	History         HistoryConfig        `toml:"history"`
	Handlers        []HandlerDeclaration `toml:"handlers,omitempty"`
}

// PluginsConfig toggles bundled plugins.
type PluginsConfig struct {
	// SimpleVideos enables the simplevideos override handler.
	// A nil value means enabled.
	SimpleVideos *bool `toml:"simplevideos,omitempty"`
}

// SimpleVideosEnabled reports whether the simplevideos plugin should load.
func (p PluginsConfig) SimpleVideosEnabled() bool {
	return p.SimpleVideos == nil || *p.SimpleVideos
}

// HistoryConfig configures the open history.
type HistoryConfig struct {
	Backend HistoryBackend `toml:"backend"`
}

// HandlerDeclaration declares a descriptor in config or a manifest.
// Renderer names an entry of the renderer catalogue.
type HandlerDeclaration struct {
	ID        string            `toml:"id" yaml:"id"`
	Group     string            `toml:"group" yaml:"group"`
	MIMETypes []string          `toml:"mimes" yaml:"mimes"`
	Aliases   map[string]string `toml:"aliases,omitempty" yaml:"aliases,omitempty"`
	Renderer  string            `toml:"renderer" yaml:"renderer"`
	Priority  string            `toml:"priority,omitempty" yaml:"priority,omitempty"`
}

// Validate checks the declaration is usable. Every MIME type and alias
// must survive NormaliseMIMEType.
func (h *HandlerDeclaration) Validate() error {
	if h.ID == "" || h.Renderer == "" {
		return ErrInvalidInput
	}
	for _, m := range h.MIMETypes {
		if NormaliseMIMEType(m) == "" {
			return fmt.Errorf("mime type %q: %w", m, ErrInvalidInput)
		}
	}
	for alias, canonical := range h.Aliases {
		if NormaliseMIMEType(alias) == "" || NormaliseMIMEType(canonical) == "" {
			return fmt.Errorf("alias %q -> %q: %w", alias, canonical, ErrInvalidInput)
		}
	}
	_, err := ParsePriority(h.Priority)
	return err
}

// DefaultViewerConfig returns the configuration used when no file exists.
func DefaultViewerConfig() ViewerConfig {
	return ViewerConfig{
		History: HistoryConfig{Backend: HistorySQLite},
	}
}
