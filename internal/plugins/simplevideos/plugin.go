// Package simplevideos is a viewer plugin that renders common video formats
// with a simple HTML5 player. It installs its handler ahead of the host's
// built-in video handler, so it wins every type both claim.
package simplevideos

import (
	"sync"

	"github.com/custodia-labs/mimeview/internal/core/domain"
	"github.com/custodia-labs/mimeview/internal/core/ports/driven"
	"github.com/custodia-labs/mimeview/internal/host"
	"github.com/custodia-labs/mimeview/internal/logger"
	"github.com/custodia-labs/mimeview/internal/renderers/video"
)

// ID is the plugin's handler ID.
const ID = "simplevideos"

// Descriptor returns the plugin's handler descriptor.
func Descriptor() *domain.HandlerDescriptor {
	return &domain.HandlerDescriptor{
		ID:    ID,
		Group: "media",
		MIMETypes: []string{
			"video/mpeg",
			"video/ogg",
			"video/webm",
			"video/mp4",
			"video/x-m4v",
			"video/x-flv",
			"video/quicktime",
		},
		Aliases: map[string]string{
			"video/x-matroska": "video/webm",
		},
		Renderer: video.New(video.WithPlayer(video.PlayerSimple)),
	}
}

// Install inserts the descriptor at override priority.
func Install(r driven.HandlerRegistry) error {
	logger.Debug("installing %s handler (override)", ID)
	return r.Insert(Descriptor(), domain.PriorityOverride)
}

// Listen installs the plugin into r when the host builds either the file
// browsing or the file sharing page. The handler is installed at most once
// however many events are delivered.
func Listen(d *host.Dispatcher, r driven.HandlerRegistry) {
	var (
		once sync.Once
		err  error
	)
	install := func(host.Event) error {
		once.Do(func() { err = Install(r) })
		return err
	}
	d.AddListener(host.EventFilesLoadScripts, install)
	d.AddListener(host.EventSharingBeforeRender, install)
}
