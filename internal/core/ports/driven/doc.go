// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - HandlerRegistry: Ordered handler descriptors and MIME resolution
//   - MIMEDetector: Reports the MIME type of a local file
//   - ConfigStore: Viewer configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - OpenHistoryStore: Records file-opens. Without it, history is empty.
//   - ManifestSource: Declarative handler manifests from external modules.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, renderer, or plugin package
package driven
