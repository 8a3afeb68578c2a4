package detect

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mimeview/internal/core/domain"
)

var pngHeader = []byte{
	0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n',
	0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
}

func write(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want string
	}{
		{"png by content", "picture.dat", pngHeader, "image/png"},
		{"png despite extension", "picture.txt", pngHeader, "image/png"},
		{"plain text", "notes.txt", []byte("hello world\n"), "text/plain"},
		{"markdown by extension", "README.md", []byte("# Title\n\nSome text.\n"), "text/markdown"},
		{"go by extension", "main.go", []byte("package main\n"), "text/x-go"},
		{"unknown bytes", "blob", []byte{0x00, 0x01, 0x02, 0x03}, "application/octet-stream"},
	}

	d := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Detect(context.Background(), write(t, tt.file, tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, domain.NormaliseMIMEType(got))
		})
	}
}

func TestDetector_Detect_MissingFile(t *testing.T) {
	_, err := New().Detect(context.Background(), filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDetector_Detect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Detect(ctx, "whatever")
	assert.ErrorIs(t, err, context.Canceled)
}
