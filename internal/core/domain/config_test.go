package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultViewerConfig(t *testing.T) {
	cfg := DefaultViewerConfig()

	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.DisableBuiltins)
	assert.Equal(t, HistorySQLite, cfg.History.Backend)
	assert.True(t, cfg.Plugins.SimpleVideosEnabled())
	assert.Empty(t, cfg.Handlers)
}

func TestPluginsConfig_SimpleVideosEnabled(t *testing.T) {
	off := false
	on := true

	assert.True(t, PluginsConfig{}.SimpleVideosEnabled())
	assert.True(t, PluginsConfig{SimpleVideos: &on}.SimpleVideosEnabled())
	assert.False(t, PluginsConfig{SimpleVideos: &off}.SimpleVideosEnabled())
}

func TestHandlerDeclaration_Validate(t *testing.T) {
	tests := []struct {
		name    string
		decl    HandlerDeclaration
		wantErr bool
	}{
		{"valid", HandlerDeclaration{ID: "pdf", Renderer: "text"}, false},
		{"valid override", HandlerDeclaration{ID: "pdf", Renderer: "text", Priority: "override"}, false},
		{"missing id", HandlerDeclaration{Renderer: "text"}, true},
		{"missing renderer", HandlerDeclaration{ID: "pdf"}, true},
		{"bad priority", HandlerDeclaration{ID: "pdf", Renderer: "text", Priority: "urgent"}, true},
		{"mixed case mime", HandlerDeclaration{ID: "v", Renderer: "video", MIMETypes: []string{"Video/X-Custom"}}, false},
		{"mime with params", HandlerDeclaration{ID: "v", Renderer: "video", MIMETypes: []string{"video/mp4; codecs=avc1"}}, false},
		{"malformed mime", HandlerDeclaration{ID: "v", Renderer: "video", MIMETypes: []string{"video"}}, true},
		{"empty mime", HandlerDeclaration{ID: "v", Renderer: "video", MIMETypes: []string{"  "}}, true},
		{"malformed alias", HandlerDeclaration{ID: "v", Renderer: "video", Aliases: map[string]string{"avi": "video/x-msvideo"}}, true},
		{"malformed alias target", HandlerDeclaration{ID: "v", Renderer: "video", Aliases: map[string]string{"video/avi": ""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decl.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
