package driven

import "github.com/custodia-labs/mimeview/internal/core/domain"

// HandlerRegistry holds handler descriptors in resolution order and
// answers which descriptor, if any, renders a MIME type.
type HandlerRegistry interface {
	// Insert adds a descriptor. PriorityNormal appends it to the
	// resolution order, PriorityOverride places it first.
	Insert(d *domain.HandlerDescriptor, priority domain.Priority) error

	// Resolve returns the first descriptor claiming the type, directly or
	// through its alias table. ok is false when nothing matches.
	Resolve(rawMIMEType string) (d *domain.HandlerDescriptor, ok bool)

	// Claimed reports whether any descriptor lists the type directly.
	Claimed(mimeType string) bool

	// MIMETypes returns all directly claimed types.
	MIMETypes() []string

	// Handlers returns the descriptors in resolution order.
	Handlers() []*domain.HandlerDescriptor
}
