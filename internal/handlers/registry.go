package handlers

import (
	"fmt"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.HandlerRegistry = (*Registry)(nil)

// Registry is an ordered collection of handler descriptors.
type Registry struct {
	descriptors []*domain.HandlerDescriptor
	ids         map[string]struct{}
	// mimes counts the descriptors claiming each type directly.
	mimes map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ids:   make(map[string]struct{}),
		mimes: make(map[string]int),
	}
}

// Insert adds a descriptor at the given priority.
// PriorityNormal appends, PriorityOverride prepends.
// Returns ErrInvalidInput for a nil descriptor or empty ID and
// ErrAlreadyExists when the ID is taken.
func (r *Registry) Insert(d *domain.HandlerDescriptor, priority domain.Priority) error {
	if d == nil || d.ID == "" {
		return domain.ErrInvalidInput
	}
	if _, ok := r.ids[d.ID]; ok {
		return fmt.Errorf("handler %q: %w", d.ID, domain.ErrAlreadyExists)
	}

	switch priority {
	case domain.PriorityOverride:
		r.descriptors = append([]*domain.HandlerDescriptor{d}, r.descriptors...)
	case domain.PriorityNormal:
		r.descriptors = append(r.descriptors, d)
	default:
		return fmt.Errorf("priority %d: %w", priority, domain.ErrInvalidInput)
	}

	r.ids[d.ID] = struct{}{}
	for _, m := range d.MIMETypes {
		r.mimes[m]++
	}
	return nil
}

// Resolve returns the first descriptor that claims rawMIMEType, either
// through its alias table or directly. It never fails; an empty or
// unclaimed type simply reports no match.
func (r *Registry) Resolve(rawMIMEType string) (*domain.HandlerDescriptor, bool) {
	if rawMIMEType == "" {
		return nil, false
	}
	for _, d := range r.descriptors {
		canonical := ResolveAlias(rawMIMEType, d.Aliases)
		if d.Claims(canonical) || (canonical != rawMIMEType && d.Claims(rawMIMEType)) {
			return d, true
		}
	}
	return nil, false
}

// Claimed reports whether any descriptor lists mimeType directly.
// Aliased types are not part of the claimed set.
func (r *Registry) Claimed(mimeType string) bool {
	return r.mimes[mimeType] > 0
}

// MIMETypes returns every directly claimed type in resolution order,
// without duplicates.
func (r *Registry) MIMETypes() []string {
	seen := make(map[string]struct{}, len(r.mimes))
	types := make([]string, 0, len(r.mimes))
	for _, d := range r.descriptors {
		for _, m := range d.MIMETypes {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			types = append(types, m)
		}
	}
	return types
}

// Handlers returns the descriptors in resolution order.
// The slice is a copy; the descriptors are shared.
func (r *Registry) Handlers() []*domain.HandlerDescriptor {
	out := make([]*domain.HandlerDescriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Get returns the descriptor with the given ID.
func (r *Registry) Get(id string) (*domain.HandlerDescriptor, bool) {
	for _, d := range r.descriptors {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
