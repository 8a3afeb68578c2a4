// Package sqlite provides a SQLite-based implementation of the driven
// storage ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
//   - OpenHistoryStore: files opened through the viewer, newest first
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory, named NNN_description.up.sql.
//
// # Data Location
//
// By default, the database is stored at ~/.mimeview/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
