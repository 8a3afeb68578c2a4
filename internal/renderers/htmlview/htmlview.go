// Package htmlview holds the HTML scaffolding shared by the renderers.
package htmlview

import (
	"bytes"
	"html/template"
	"net/url"
	"path/filepath"

	"github.com/custodia-labs/mimeview/internal/core/domain"
)

// ContentType is the content type of every view built here.
const ContentType = "text/html; charset=utf-8"

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body class="viewer" data-mime="{{.MIMEType}}">
{{.Content}}
</body>
</html>
`))

// Build wraps content in a page titled after the file and returns the view.
func Build(file domain.FileRef, content template.HTML) (*domain.View, error) {
	return BuildTitled(file, Title(file), content)
}

// BuildTitled is Build with an explicit title.
func BuildTitled(file domain.FileRef, title string, content template.HTML) (*domain.View, error) {
	var buf bytes.Buffer
	err := page.Execute(&buf, struct {
		Title    string
		MIMEType string
		Content  template.HTML
	}{
		Title:    title,
		MIMEType: file.MIMEType,
		Content:  content,
	})
	if err != nil {
		return nil, err
	}
	return &domain.View{
		Title:       title,
		ContentType: ContentType,
		Body:        buf.Bytes(),
	}, nil
}

// Title returns the display title of a file.
func Title(file domain.FileRef) string {
	if file.Name != "" {
		return file.Name
	}
	return filepath.Base(file.Path)
}

// FileURL converts a local path to a file:// URL.
func FileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}
