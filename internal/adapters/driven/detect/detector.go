// Package detect reports the MIME type of local files by sniffing their
// content, refined by file extension where content alone is ambiguous.
package detect

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/custodia-labs/mimeview/internal/core/ports/driven"
)

// Ensure Detector implements the interface.
var _ driven.MIMEDetector = (*Detector)(nil)

// ambiguous are sniffed types that say little beyond "text" or "bytes".
var ambiguous = []string{"application/octet-stream", "text/plain"}

func init() {
	// Types the viewer's handlers claim that the platform tables often lack.
	for ext, typ := range map[string]string{
		".md":  "text/markdown",
		".go":  "text/x-go",
		".rs":  "text/x-rust",
		".csv": "text/csv",
		".mkv": "video/x-matroska",
		".m4v": "video/x-m4v",
		".flv": "video/x-flv",
		".mov": "video/quicktime",
	} {
		_ = mime.AddExtensionType(ext, typ)
	}
}

// Detector sniffs file content.
type Detector struct{}

// New creates a detector.
func New() *Detector {
	return &Detector{}
}

// Detect returns the file's MIME type. Content sniffing wins unless it is
// ambiguous and the extension names something more specific.
func (d *Detector) Detect(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("sniffing %s: %w", path, err)
	}

	if m.Is(ambiguous[0]) || m.Is(ambiguous[1]) {
		if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
			return byExt, nil
		}
	}
	return m.String(), nil
}
