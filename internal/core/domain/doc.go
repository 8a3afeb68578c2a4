// Package domain defines the core entities of the viewer's handler registry.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - HandlerDescriptor: A claim to render a set of MIME types
//   - Renderer: The render capability a descriptor carries
//   - FileRef, View: What a renderer consumes and produces
//   - OpenEvent: A history record of a file-open
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
