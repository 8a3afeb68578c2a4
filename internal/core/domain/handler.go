package domain

// Priority controls where a descriptor lands in the resolution order.
type Priority int

const (
	// PriorityNormal appends the descriptor after every registered one.
	PriorityNormal Priority = iota
	// PriorityOverride places the descriptor ahead of every registered one.
	// Among several overrides the most recently inserted wins.
	PriorityOverride
)

// String returns the config spelling of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityOverride:
		return "override"
	default:
		return "normal"
	}
}

// ParsePriority parses "normal" or "override". An empty string is normal.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "", "normal":
		return PriorityNormal, nil
	case "override":
		return PriorityOverride, nil
	default:
		return PriorityNormal, ErrInvalidInput
	}
}

// HandlerDescriptor is a registered claim that a module can render files
// of certain MIME types.
type HandlerDescriptor struct {
	// ID is unique across a registry (e.g., "simplevideos").
	ID string
	// Group is a classification label. It is not used for matching.
	Group string
	// MIMETypes lists the claimed types in declaration order.
	MIMETypes []string
	// Aliases maps variant MIME types to the canonical type they stand for.
	Aliases map[string]string
	// Renderer produces the view for a matched file.
	Renderer Renderer
}

// Claims reports whether mimeType is listed directly in MIMETypes.
func (d *HandlerDescriptor) Claims(mimeType string) bool {
	for _, m := range d.MIMETypes {
		if m == mimeType {
			return true
		}
	}
	return false
}

// Fallback names what the host does with a file no handler claims.
type Fallback string

const (
	// FallbackNone means a handler matched.
	FallbackNone Fallback = ""
	// FallbackDownload offers the file for download only.
	FallbackDownload Fallback = "download"
)
