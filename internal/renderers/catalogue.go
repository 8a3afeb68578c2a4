package renderers

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/renderers/image"
	"github.com/custodia-labs/mimeview/internal/renderers/markdown"
	"github.com/custodia-labs/mimeview/internal/renderers/text"
	"github.com/custodia-labs/mimeview/internal/renderers/video"
)

// Renderer names understood by DefaultCatalogue.
const (
	NameVideo       = "video"
	NameSimpleVideo = "simple-video"
	NameImage       = "image"
	NameText        = "text"
	NameMarkdown    = "markdown"
)

// Catalogue maps renderer names to renderers.
type Catalogue struct {
	renderers map[string]domain.Renderer
}

// NewCatalogue creates an empty catalogue.
func NewCatalogue() *Catalogue {
	return &Catalogue{
		renderers: make(map[string]domain.Renderer),
	}
}

// DefaultCatalogue returns a catalogue holding the built-in renderers.
func DefaultCatalogue() *Catalogue {
	c := NewCatalogue()
	c.Register(NameVideo, video.New(video.WithPlayer(video.PlayerBuiltin)))
	c.Register(NameSimpleVideo, video.New(video.WithPlayer(video.PlayerSimple)))
	c.Register(NameImage, image.New())
	c.Register(NameText, text.New())
	c.Register(NameMarkdown, markdown.New())
	return c
}

// Register adds or replaces a renderer under name.
func (c *Catalogue) Register(name string, r domain.Renderer) {
	c.renderers[name] = r
}

// Get returns the renderer registered under name.
// Returns ErrUnsupportedType if the name is unknown.
func (c *Catalogue) Get(name string) (domain.Renderer, error) {
	r, ok := c.renderers[name]
	if !ok {
		return nil, fmt.Errorf("renderer %q: %w", name, domain.ErrUnsupportedType)
	}
	return r, nil
}

// Names returns the registered renderer names, sorted.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.renderers))
	for name := range c.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
