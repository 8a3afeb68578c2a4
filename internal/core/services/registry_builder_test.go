package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mimeview/internal/builtins"
	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/plugins/simplevideos"
	"github.com/custodia-labs/mimeview/internal/renderers"
)

type staticManifests struct {
	decls []domain.HandlerDeclaration
	err   error
}

func (s staticManifests) Declarations() ([]domain.HandlerDeclaration, error) {
	return s.decls, s.err
}

func handlerIDs(t *testing.T, b *RegistryBuilder, cfg domain.ViewerConfig) []string {
	t.Helper()
	reg, err := b.Build(cfg)
	require.NoError(t, err)
	var out []string
	for _, d := range reg.Handlers() {
		out = append(out, d.ID)
	}
	return out
}

func TestNewRegistryBuilder_DefaultCatalogue(t *testing.T) {
	b := NewRegistryBuilder(nil, nil)
	require.NotNil(t, b.catalogue)
}

func TestRegistryBuilder_Build_Default(t *testing.T) {
	b := NewRegistryBuilder(renderers.DefaultCatalogue(), nil)

	ids := handlerIDs(t, b, domain.DefaultViewerConfig())

	assert.Equal(t, []string{simplevideos.ID, builtins.VideoID, builtins.ImagesID, builtins.TextID}, ids)
}

func TestRegistryBuilder_Build_PluginDisabled(t *testing.T) {
	b := NewRegistryBuilder(nil, nil)
	off := false
	cfg := domain.DefaultViewerConfig()
	cfg.Plugins.SimpleVideos = &off

	ids := handlerIDs(t, b, cfg)

	assert.Equal(t, []string{builtins.VideoID, builtins.ImagesID, builtins.TextID}, ids)
}

func TestRegistryBuilder_Build_BuiltinsDisabled(t *testing.T) {
	b := NewRegistryBuilder(nil, nil)
	cfg := domain.DefaultViewerConfig()
	cfg.DisableBuiltins = true

	ids := handlerIDs(t, b, cfg)

	assert.Equal(t, []string{simplevideos.ID}, ids)
}

func TestRegistryBuilder_Build_Declarations(t *testing.T) {
	manifests := staticManifests{decls: []domain.HandlerDeclaration{
		{ID: "manifest-text", Group: "text", MIMETypes: []string{"text/x-rust"}, Renderer: renderers.NameText},
	}}
	b := NewRegistryBuilder(nil, manifests)
	cfg := domain.DefaultViewerConfig()
	cfg.Handlers = []domain.HandlerDeclaration{
		{
			ID:        "raw-video",
			Group:     "media",
			MIMETypes: []string{"video/mp4", "video/x-msvideo"},
			Aliases:   map[string]string{"video/avi": "video/x-msvideo"},
			Renderer:  renderers.NameVideo,
			Priority:  "override",
		},
		{ID: "markdown", Group: "text", MIMETypes: []string{"text/markdown"}, Renderer: renderers.NameText},
	}

	reg, err := b.Build(cfg)
	require.NoError(t, err)

	var ids []string
	for _, d := range reg.Handlers() {
		ids = append(ids, d.ID)
	}
	// The plugin installs after the config, so its override lands first.
	assert.Equal(t, []string{
		simplevideos.ID, "raw-video",
		builtins.VideoID, builtins.ImagesID, builtins.TextID,
		"markdown", "manifest-text",
	}, ids)

	d, ok := reg.Resolve("video/avi")
	require.True(t, ok)
	assert.Equal(t, "raw-video", d.ID)

	// Built-in text still wins markdown: it was registered first.
	d, ok = reg.Resolve("text/markdown")
	require.True(t, ok)
	assert.Equal(t, builtins.TextID, d.ID)

	d, ok = reg.Resolve("text/x-rust")
	require.True(t, ok)
	assert.Equal(t, "manifest-text", d.ID)
}

func TestRegistryBuilder_Build_DeclarationCopiesAliases(t *testing.T) {
	aliases := map[string]string{"video/avi": "video/x-msvideo"}
	cfg := domain.DefaultViewerConfig()
	cfg.Handlers = []domain.HandlerDeclaration{
		{ID: "avi", MIMETypes: []string{"video/x-msvideo"}, Aliases: aliases, Renderer: renderers.NameVideo},
	}

	reg, err := NewRegistryBuilder(nil, nil).Build(cfg)
	require.NoError(t, err)
	aliases["video/avi"] = "video/other"

	d, ok := reg.Resolve("video/avi")
	require.True(t, ok)
	assert.Equal(t, "avi", d.ID)
}

func TestRegistryBuilder_Build_NormalisesDeclaredTypes(t *testing.T) {
	off := false
	cfg := domain.DefaultViewerConfig()
	cfg.DisableBuiltins = true
	cfg.Plugins.SimpleVideos = &off
	cfg.Handlers = []domain.HandlerDeclaration{
		{
			ID:        "custom",
			MIMETypes: []string{"Video/X-Custom", "video/mp4; codecs=avc1"},
			Aliases:   map[string]string{"Video/X-Alt": "Video/X-Custom"},
			Renderer:  renderers.NameVideo,
		},
	}

	reg, err := NewRegistryBuilder(nil, nil).Build(cfg)
	require.NoError(t, err)
	svc := NewViewerService(reg, newMockDetector(), nil)

	for _, query := range []string{"video/x-custom", "Video/X-Custom", "video/x-alt", "video/mp4"} {
		d, ok := svc.Resolve(query)
		require.True(t, ok, query)
		assert.Equal(t, "custom", d.ID, query)
	}

	d := reg.Handlers()[0]
	assert.Equal(t, []string{"video/x-custom", "video/mp4"}, d.MIMETypes)
	assert.Equal(t, map[string]string{"video/x-alt": "video/x-custom"}, d.Aliases)
}

func TestRegistryBuilder_Build_Errors(t *testing.T) {
	tests := []struct {
		name      string
		decls     []domain.HandlerDeclaration
		manifests staticManifests
		wantErr   error
	}{
		{
			name:    "unknown renderer",
			decls:   []domain.HandlerDeclaration{{ID: "pdf", Renderer: "pdf"}},
			wantErr: domain.ErrUnsupportedType,
		},
		{
			name:    "invalid declaration",
			decls:   []domain.HandlerDeclaration{{Renderer: renderers.NameText}},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "malformed mime type",
			decls:   []domain.HandlerDeclaration{{ID: "x", MIMETypes: []string{"not-a-type"}, Renderer: renderers.NameText}},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "bad priority",
			decls:   []domain.HandlerDeclaration{{ID: "x", Renderer: renderers.NameText, Priority: "top"}},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "collides with builtin",
			decls:   []domain.HandlerDeclaration{{ID: builtins.TextID, Renderer: renderers.NameText}},
			wantErr: domain.ErrAlreadyExists,
		},
		{
			name:      "collides across config and manifest",
			decls:     []domain.HandlerDeclaration{{ID: "dup", Renderer: renderers.NameText}},
			manifests: staticManifests{decls: []domain.HandlerDeclaration{{ID: "dup", Renderer: renderers.NameImage}}},
			wantErr:   domain.ErrAlreadyExists,
		},
		{
			name:    "plugin collides with declaration",
			decls:   []domain.HandlerDeclaration{{ID: simplevideos.ID, Renderer: renderers.NameVideo}},
			wantErr: domain.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewRegistryBuilder(nil, tt.manifests)
			cfg := domain.DefaultViewerConfig()
			cfg.Handlers = tt.decls

			_, err := b.Build(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistryBuilder_Build_ManifestError(t *testing.T) {
	boom := errors.New("unreadable manifest")
	b := NewRegistryBuilder(nil, staticManifests{err: boom})

	_, err := b.Build(domain.DefaultViewerConfig())
	assert.ErrorIs(t, err, boom)
}
