// Package text renders text files as an escaped <pre> block.
package text

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"unicode/utf8"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/renderers/htmlview"
)

// DefaultMaxBytes is the largest prefix of a file that is displayed.
const DefaultMaxBytes = 1 << 20

// Ensure Renderer implements the interface.
var _ domain.Renderer = (*Renderer)(nil)

var pre = template.Must(template.New("text").Parse(
	`<pre class="text">{{.Content}}</pre>{{if .Truncated}}
<p class="truncated">Showing the first {{.Shown}} bytes.</p>{{end}}`))

// Renderer produces a text view.
type Renderer struct {
	maxBytes int64
}

// Option configures the renderer.
type Option func(*Renderer)

// WithMaxBytes sets how much of the file is displayed.
func WithMaxBytes(n int64) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxBytes = n
		}
	}
}

// New creates a text renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{maxBytes: DefaultMaxBytes}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render reads up to the byte limit of file and builds the page.
func (r *Renderer) Render(ctx context.Context, file domain.FileRef) (*domain.View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if file.Path == "" {
		return nil, domain.ErrInvalidInput
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file.Path, err)
	}
	defer f.Close()

	// Read one byte past the limit to detect truncation.
	data, err := io.ReadAll(io.LimitReader(f, r.maxBytes+1))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading %s: %w", file.Path, err)
	}

	truncated := int64(len(data)) > r.maxBytes
	if truncated {
		data = trimToRune(data[:r.maxBytes])
	}

	var buf bytes.Buffer
	err = pre.Execute(&buf, struct {
		Content   string
		Truncated bool
		Shown     int
	}{
		Content:   string(bytes.ToValidUTF8(data, []byte("�"))),
		Truncated: truncated,
		Shown:     len(data),
	})
	if err != nil {
		return nil, err
	}
	return htmlview.Build(file, template.HTML(buf.String())) //nolint:gosec // produced by html/template
}

// trimToRune drops a trailing partial UTF-8 sequence left by truncation.
func trimToRune(data []byte) []byte {
	for i := 0; i < utf8.UTFMax && len(data) > 0; i++ {
		if utf8.Valid(data) {
			return data
		}
		data = data[:len(data)-1]
	}
	return data
}
