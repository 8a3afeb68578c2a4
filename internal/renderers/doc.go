// Package renderers provides implementations of the domain.Renderer
// interface and a catalogue that names them, so handler declarations in
// config and manifests can refer to a renderer by name.
//
// Renderers are registered with the Catalogue at startup.
package renderers
