package video

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mimeview/internal/core/domain"
)

func TestNew_Defaults(t *testing.T) {
	r := New()
	assert.Equal(t, PlayerSimple, r.Player())
}

func TestNew_WithPlayer(t *testing.T) {
	assert.Equal(t, PlayerBuiltin, New(WithPlayer(PlayerBuiltin)).Player())
	// Empty name keeps the default.
	assert.Equal(t, PlayerSimple, New(WithPlayer("")).Player())
}

func TestRenderer_Render(t *testing.T) {
	r := New()
	file := domain.FileRef{Path: "/media/clip.mkv", Name: "clip.mkv", MIMEType: "video/x-matroska"}

	view, err := r.Render(context.Background(), file)
	require.NoError(t, err)

	body := string(view.Body)
	assert.Equal(t, "clip.mkv", view.Title)
	assert.Contains(t, body, "<video")
	assert.Contains(t, body, `data-player="simple"`)
	assert.Contains(t, body, `src="file:///media/clip.mkv"`)
	assert.Contains(t, body, `type="video/x-matroska"`)
	assert.NotContains(t, body, "autoplay")
	assert.NotContains(t, body, " loop")
}

func TestRenderer_Render_Options(t *testing.T) {
	r := New(WithPlayer(PlayerBuiltin), WithAutoplay(true), WithLoop(true))

	view, err := r.Render(context.Background(), domain.FileRef{Path: "/media/a.mp4", MIMEType: "video/mp4"})
	require.NoError(t, err)

	body := string(view.Body)
	assert.Contains(t, body, `data-player="builtin"`)
	assert.Contains(t, body, "autoplay muted")
	assert.Contains(t, body, " loop")
}

func TestRenderer_Render_Errors(t *testing.T) {
	r := New()

	_, err := r.Render(context.Background(), domain.FileRef{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Render(ctx, domain.FileRef{Path: "/media/a.mp4"})
	assert.ErrorIs(t, err, context.Canceled)
}
