package services

import (
	"fmt"

	"github.com/custodia-labs/mimeview/internal/builtins"
	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/core/ports/driven"
	"github.com/custodia-labs/mimeview/internal/handlers"
	"github.com/custodia-labs/mimeview/internal/host"
	"github.com/custodia-labs/mimeview/internal/logger"
	"github.com/custodia-labs/mimeview/internal/plugins/simplevideos"
	"github.com/custodia-labs/mimeview/internal/renderers"
)

// RegistryBuilder assembles a handler registry from configuration.
type RegistryBuilder struct {
	catalogue *renderers.Catalogue
	manifests driven.ManifestSource
}

// NewRegistryBuilder creates a builder. manifests may be nil.
func NewRegistryBuilder(catalogue *renderers.Catalogue, manifests driven.ManifestSource) *RegistryBuilder {
	if catalogue == nil {
		catalogue = renderers.DefaultCatalogue()
	}
	return &RegistryBuilder{
		catalogue: catalogue,
		manifests: manifests,
	}
}

// Build returns a populated registry. Handlers are inserted in this order:
//
//  1. built-in handlers at normal priority, unless disabled
//  2. handlers declared in the config file, then in manifests, each at its
//     declared priority
//  3. plugins, installed by the host page events
//
// The returned registry is complete; callers must not insert into it once
// it is published to a ViewerService.
func (b *RegistryBuilder) Build(cfg domain.ViewerConfig) (*handlers.Registry, error) {
	logger.Section("Handler Registry")
	reg := handlers.NewRegistry()

	if !cfg.DisableBuiltins {
		if err := builtins.RegisterDefaults(reg); err != nil {
			return nil, fmt.Errorf("registering built-in handlers: %w", err)
		}
	}

	decls := cfg.Handlers
	if b.manifests != nil {
		fromManifests, err := b.manifests.Declarations()
		if err != nil {
			return nil, fmt.Errorf("loading handler manifests: %w", err)
		}
		decls = append(append([]domain.HandlerDeclaration(nil), decls...), fromManifests...)
	}

	for i := range decls {
		if err := b.insertDeclared(reg, &decls[i]); err != nil {
			return nil, err
		}
	}

	dispatcher := host.NewDispatcher()
	if cfg.Plugins.SimpleVideosEnabled() {
		simplevideos.Listen(dispatcher, reg)
	}
	for _, event := range []host.Event{host.EventFilesLoadScripts, host.EventSharingBeforeRender} {
		if err := dispatcher.Dispatch(event); err != nil {
			return nil, fmt.Errorf("dispatching %s: %w", event, err)
		}
	}

	for _, d := range reg.Handlers() {
		logger.Debug("handler %s (%s): %d type(s), %d alias(es)", d.ID, d.Group, len(d.MIMETypes), len(d.Aliases))
	}
	return reg, nil
}

func (b *RegistryBuilder) insertDeclared(reg *handlers.Registry, decl *domain.HandlerDeclaration) error {
	if err := decl.Validate(); err != nil {
		return fmt.Errorf("handler %q: %w", decl.ID, err)
	}
	renderer, err := b.catalogue.Get(decl.Renderer)
	if err != nil {
		return fmt.Errorf("handler %q: %w", decl.ID, err)
	}
	priority, err := domain.ParsePriority(decl.Priority)
	if err != nil {
		return fmt.Errorf("handler %q: %w", decl.ID, err)
	}

	// Queries are normalised before lookup, so declared types must be too.
	d := &domain.HandlerDescriptor{
		ID:        decl.ID,
		Group:     decl.Group,
		MIMETypes: make([]string, 0, len(decl.MIMETypes)),
		Renderer:  renderer,
	}
	for _, m := range decl.MIMETypes {
		d.MIMETypes = append(d.MIMETypes, domain.NormaliseMIMEType(m))
	}
	if len(decl.Aliases) > 0 {
		d.Aliases = make(map[string]string, len(decl.Aliases))
		for alias, canonical := range decl.Aliases {
			d.Aliases[domain.NormaliseMIMEType(alias)] = domain.NormaliseMIMEType(canonical)
		}
	}

	logger.Debug("declared handler %s at %s priority", d.ID, priority)
	return reg.Insert(d, priority)
}
