// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/mimeview/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewFiles lists the current directory.
	ViewFiles ViewType = iota
	// ViewDetail shows the resolution of one file.
	ViewDetail
	// ViewHandlers lists registered handlers in resolution order.
	ViewHandlers
)

// Entry is one row of a directory listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	// Resolution is nil for directories and for files that failed inspection.
	Resolution *domain.Resolution
	Err        error
}

// DirLoaded carries a directory listing back to the model.
type DirLoaded struct {
	Dir     string
	Entries []Entry
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}
