package driven

import "context"

// MIMEDetector reports the MIME type of a local file.
// The returned type may carry parameters (e.g., "text/plain; charset=utf-8").
type MIMEDetector interface {
	Detect(ctx context.Context, path string) (string, error)
}
