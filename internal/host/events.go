// Package host models the lifecycle events the hosting application raises
// while building its pages. Plugins listen for them to install their
// handlers before the viewer starts resolving files.
package host

import (
	"github.com/custodia-labs/mimeview/internal/logger"
)

// Event names a host lifecycle event.
type Event string

const (
	// EventFilesLoadScripts is raised when the file browsing page may load
	// additional scripts.
	EventFilesLoadScripts Event = "files.load-additional-scripts"

	// EventSharingBeforeRender is raised before the file sharing page is
	// rendered.
	EventSharingBeforeRender Event = "files_sharing.before-template-rendered"
)

// Listener reacts to an event. A returned error stops dispatch.
type Listener func(event Event) error

// Dispatcher delivers events to listeners in registration order.
// Like the registry it serves, it is configured during startup and is not
// safe for concurrent use.
type Dispatcher struct {
	listeners map[Event][]Listener
}

// NewDispatcher creates a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Event][]Listener),
	}
}

// AddListener registers fn for event.
func (d *Dispatcher) AddListener(event Event, fn Listener) {
	d.listeners[event] = append(d.listeners[event], fn)
}

// Dispatch delivers event to its listeners.
// It returns the first listener error.
func (d *Dispatcher) Dispatch(event Event) error {
	listeners := d.listeners[event]
	logger.Debug("host event %s: %d listener(s)", event, len(listeners))
	for _, fn := range listeners {
		if err := fn(event); err != nil {
			return err
		}
	}
	return nil
}

// Listeners returns the number of listeners for event.
func (d *Dispatcher) Listeners(event Event) int {
	return len(d.listeners[event])
}
