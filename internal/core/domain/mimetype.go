package domain

import (
	"mime"
	"strings"
)

// NormaliseMIMEType lowercases a reported MIME type and drops parameters,
// so "Text/Plain; charset=utf-8" becomes "text/plain". Malformed input
// yields an empty string.
func NormaliseMIMEType(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return ""
	}
	if !strings.Contains(mediaType, "/") {
		return ""
	}
	return mediaType
}
