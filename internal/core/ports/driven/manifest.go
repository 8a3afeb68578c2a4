package driven

import "github.com/custodia-labs/mimeview/internal/core/domain"

// ManifestSource loads handler declarations shipped by external modules.
type ManifestSource interface {
	// Declarations returns the declared handlers in a stable order.
	Declarations() ([]domain.HandlerDeclaration, error)
}
