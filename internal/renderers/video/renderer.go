// Package video renders video files as an HTML5 player.
package video

import (
	"bytes"
	"context"
	"html/template"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/renderers/htmlview"
)

// Player styles.
const (
	// PlayerBuiltin is the host's default player chrome.
	PlayerBuiltin = "builtin"
	// PlayerSimple is a bare <video controls> element.
	PlayerSimple = "simple"
)

// Ensure Renderer implements the interface.
var _ domain.Renderer = (*Renderer)(nil)

var player = template.Must(template.New("video").Parse(
	`<video class="player player-{{.Player}}" data-player="{{.Player}}" controls preload="metadata"` +
		`{{if .Autoplay}} autoplay muted{{end}}{{if .Loop}} loop{{end}}>
<source src="{{.Src}}" type="{{.MIMEType}}">
</video>`))

// Renderer produces a video player view.
type Renderer struct {
	player   string
	autoplay bool
	loop     bool
}

// Option configures the renderer.
type Option func(*Renderer)

// WithPlayer sets the player style.
func WithPlayer(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.player = name
		}
	}
}

// WithAutoplay starts playback muted on load.
func WithAutoplay(autoplay bool) Option {
	return func(r *Renderer) {
		r.autoplay = autoplay
	}
}

// WithLoop restarts playback at the end.
func WithLoop(loop bool) Option {
	return func(r *Renderer) {
		r.loop = loop
	}
}

// New creates a video renderer. The default player is PlayerSimple.
func New(opts ...Option) *Renderer {
	r := &Renderer{player: PlayerSimple}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Player returns the player style.
func (r *Renderer) Player() string {
	return r.player
}

// Render builds the player page for file.
func (r *Renderer) Render(ctx context.Context, file domain.FileRef) (*domain.View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if file.Path == "" {
		return nil, domain.ErrInvalidInput
	}

	var buf bytes.Buffer
	err := player.Execute(&buf, struct {
		Player   string
		Src      template.URL
		MIMEType string
		Autoplay bool
		Loop     bool
	}{
		Player:   r.player,
		Src:      template.URL(htmlview.FileURL(file.Path)), //nolint:gosec // local file path
		MIMEType: file.MIMEType,
		Autoplay: r.autoplay,
		Loop:     r.loop,
	})
	if err != nil {
		return nil, err
	}

	return htmlview.Build(file, template.HTML(buf.String())) //nolint:gosec // produced by html/template
}
