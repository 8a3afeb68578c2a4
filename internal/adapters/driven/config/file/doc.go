// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based viewer configuration
//   - Watcher: Reloads the configuration when the file changes
package file
