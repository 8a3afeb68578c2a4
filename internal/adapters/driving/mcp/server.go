// Package mcp exposes the handler registry to MCP clients. Assistants can
// ask which handler renders a MIME type or a local file, list the
// registry in resolution order and read recent open history.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// instructions is sent to clients on initialize.
const instructions = `mimeview maps files to the handler that renders them.
Handlers are tried in order and the first one claiming a MIME type wins.
Use resolve_mime_type for a bare type and inspect_file for a path on disk.
A type no handler claims is offered for download only.`

// Server answers handler queries over MCP.
type Server struct {
	ports  *Ports
	impl   *mcp.Implementation
	server *mcp.Server
}

// NewServer creates a server reporting the given mimeview version.
// An empty version is reported as "dev".
func NewServer(ports *Ports, version string) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	if version == "" {
		version = "dev"
	}

	impl := &mcp.Implementation{
		Name:    "mimeview",
		Title:   "mimeview handler registry",
		Version: version,
	}

	s := &Server{
		ports:  ports,
		impl:   impl,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
