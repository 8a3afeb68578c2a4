// Package handlers holds the viewer's handler registry: an ordered list of
// handler descriptors and the alias resolution used when matching a MIME type
// against them.
//
// Resolution is positionally deterministic. Descriptors inserted with
// PriorityNormal are appended, descriptors inserted with PriorityOverride are
// prepended, and the first descriptor claiming a type wins. Overlapping claims
// are never rejected.
//
// A Registry is not safe for concurrent mutation. Build it during startup and
// only query it afterwards; callers that reload handlers at runtime build a new
// Registry and publish it instead of mutating a published one.
package handlers
