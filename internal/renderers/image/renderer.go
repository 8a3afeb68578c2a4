// Package image renders image files as an <img> page.
package image

import (
	"bytes"
	"context"
	"html/template"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/renderers/htmlview"
)

// Ensure Renderer implements the interface.
var _ domain.Renderer = (*Renderer)(nil)

var img = template.Must(template.New("image").Parse(
	`<figure class="image"><img src="{{.Src}}" alt="{{.Alt}}"><figcaption>{{.Alt}}</figcaption></figure>`))

// Renderer produces an image view.
type Renderer struct{}

// New creates an image renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render builds the image page for file.
func (r *Renderer) Render(ctx context.Context, file domain.FileRef) (*domain.View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if file.Path == "" {
		return nil, domain.ErrInvalidInput
	}

	var buf bytes.Buffer
	err := img.Execute(&buf, struct {
		Src template.URL
		Alt string
	}{
		Src: template.URL(htmlview.FileURL(file.Path)), //nolint:gosec // local file path
		Alt: htmlview.Title(file),
	})
	if err != nil {
		return nil, err
	}
	return htmlview.Build(file, template.HTML(buf.String())) //nolint:gosec // produced by html/template
}
