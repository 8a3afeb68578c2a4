// Package markdown renders Markdown files as a titled plain-text article.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/renderers/htmlview"
	"github.com/custodia-labs/mimeview/internal/renderers/text"
)

// Ensure Renderer implements the interface.
var _ domain.Renderer = (*Renderer)(nil)

var article = template.Must(template.New("markdown").Parse(
	`<article class="markdown">
<h1>{{.Title}}</h1>
<pre class="text">{{.Content}}</pre>
</article>`))

var (
	codeBlock    = regexp.MustCompile("(?s)```[^`]*```")
	inlineCode   = regexp.MustCompile("`([^`]+)`")
	images       = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	links        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headings     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	blockquote   = regexp.MustCompile(`(?m)^>\s*`)
	rules        = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	listMarkers  = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	numbered     = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	manyNewlines = regexp.MustCompile(`\n{3,}`)
)

// Renderer produces a Markdown view.
type Renderer struct {
	maxBytes int64
}

// New creates a Markdown renderer that reads at most text.DefaultMaxBytes.
func New() *Renderer {
	return &Renderer{maxBytes: text.DefaultMaxBytes}
}

// Render reads the file, takes the first level-one heading as the title
// and shows the rest with Markdown markup removed.
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

	data, err := io.ReadAll(io.LimitReader(f, r.maxBytes))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading %s: %w", file.Path, err)
	}
	content := string(bytes.ToValidUTF8(data, []byte("�")))
	title := Title(content, file.Path)

	var buf bytes.Buffer
	err = article.Execute(&buf, struct {
		Title   string
		Content string
	}{
		Title:   title,
		Content: Strip(content),
	})
	if err != nil {
		return nil, err
	}
	return htmlview.BuildTitled(file, title, template.HTML(buf.String())) //nolint:gosec // produced by html/template
}

// Title returns the first "# " heading, or a name derived from path.
func Title(content, path string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}

	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	return strings.ReplaceAll(name, "-", " ")
}

// Strip removes common Markdown formatting, keeping the readable text.
func Strip(content string) string {
	content = codeBlock.ReplaceAllStringFunc(content, func(block string) string {
		inner := strings.TrimSuffix(strings.TrimPrefix(block, "```"), "```")
		// Drop the fence line and its info string.
		if i := strings.IndexByte(inner, '\n'); i >= 0 {
			inner = inner[i+1:]
		}
		return strings.TrimRight(inner, "\n")
	})
	content = inlineCode.ReplaceAllString(content, "$1")
	content = images.ReplaceAllString(content, "$1")
	content = links.ReplaceAllString(content, "$1")
	content = headings.ReplaceAllString(content, "")

	content = strings.ReplaceAll(content, "**", "")
	content = strings.ReplaceAll(content, "__", "")

	content = blockquote.ReplaceAllString(content, "")
	content = rules.ReplaceAllString(content, "")
	content = listMarkers.ReplaceAllString(content, "")
	content = numbered.ReplaceAllString(content, "")
	content = manyNewlines.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
