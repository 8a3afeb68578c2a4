// Package manifest loads handler declarations that external modules drop
// into the handlers.d directory as YAML files:
//
//	handlers:
//	  - id: mkv-player
//	    group: media
//	    mimes: [video/x-matroska]
//	    renderer: simple-video
//	    priority: override
//
// Files are read in lexical order, so a module controls its position by
// naming its manifest (e.g., "10-mkv.yaml").
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/core/ports/driven"
	"github.com/custodia-labs/mimeview/internal/logger"
)

// DirName is the manifest directory inside the config directory.
const DirName = "handlers.d"

// Ensure Dir implements the interface.
var _ driven.ManifestSource = (*Dir)(nil)

// Dir reads manifests from a directory.
type Dir struct {
	path string
}

// file is the on-disk manifest layout.
type file struct {
	Handlers []domain.HandlerDeclaration `yaml:"handlers"`
}

// NewDir creates a manifest source for path. The directory need not exist.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the manifest directory.
func (d *Dir) Path() string {
	return d.path
}

// Declarations returns the handlers declared by every manifest, in file
// order and then declaration order.
func (d *Dir) Declarations() ([]domain.HandlerDeclaration, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", d.path, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var decls []domain.HandlerDeclaration
	for _, name := range names {
		fromFile, err := readFile(filepath.Join(d.path, name))
		if err != nil {
			return nil, err
		}
		logger.Debug("manifest %s: %d handler(s)", name, len(fromFile))
		decls = append(decls, fromFile...)
	}
	return decls, nil
}

func readFile(path string) ([]domain.HandlerDeclaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	for i := range m.Handlers {
		if err := m.Handlers[i].Validate(); err != nil {
			return nil, fmt.Errorf("manifest %s: handler %d: %w", path, i, err)
		}
	}
	return m.Handlers, nil
}
