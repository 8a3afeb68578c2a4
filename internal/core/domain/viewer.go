package domain

import "time"

// Resolution is the outcome of matching a file against the registry.
type Resolution struct {
	// File is the inspected file.
	File FileRef
	// Handler is the matched descriptor, nil when nothing claims the type.
	Handler *HandlerDescriptor
	// Fallback is set when Handler is nil.
	Fallback Fallback
}

// Matched returns true if a handler claimed the file.
func (r *Resolution) Matched() bool {
	return r != nil && r.Handler != nil
}

// OpenResult is the outcome of opening a file in the viewer.
type OpenResult struct {
	Resolution
	// View is the rendered document, nil on fallback.
	View *View
	// EventID identifies the recorded history entry.
	EventID string
}

// OpenEvent is a history record of a file-open.
type OpenEvent struct {
	ID        string
	Path      string
	MIMEType  string
	HandlerID string // empty when the host fell back
	OpenedAt  time.Time
}
