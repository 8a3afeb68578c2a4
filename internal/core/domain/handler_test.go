package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"", PriorityNormal, false},
		{"normal", PriorityNormal, false},
		{"override", PriorityOverride, false},
		{"OVERRIDE", PriorityNormal, true},
		{"first", PriorityNormal, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriority_String(t *testing.T) {
	assert.Equal(t, "normal", PriorityNormal.String())
	assert.Equal(t, "override", PriorityOverride.String())
}

func TestHandlerDescriptor_Claims(t *testing.T) {
	d := HandlerDescriptor{
		ID:        "simplevideos",
		MIMETypes: []string{"video/mp4", "video/webm"},
		Aliases:   map[string]string{"video/x-matroska": "video/webm"},
	}

	assert.True(t, d.Claims("video/mp4"))
	assert.True(t, d.Claims("video/webm"))
	// Aliases are not direct claims.
	assert.False(t, d.Claims("video/x-matroska"))
	assert.False(t, d.Claims(""))
}

func TestRendererFunc(t *testing.T) {
	var r Renderer = RendererFunc(func(_ context.Context, file FileRef) (*View, error) {
		return &View{Title: file.Name}, nil
	})

	view, err := r.Render(context.Background(), FileRef{Name: "clip.mp4"})
	require.NoError(t, err)
	assert.Equal(t, "clip.mp4", view.Title)
}

func TestResolution_Matched(t *testing.T) {
	var nilRes *Resolution
	assert.False(t, nilRes.Matched())
	assert.False(t, (&Resolution{Fallback: FallbackDownload}).Matched())
	assert.True(t, (&Resolution{Handler: &HandlerDescriptor{ID: "x"}}).Matched())
}
