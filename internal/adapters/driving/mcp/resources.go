package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for mimeview resources.
	uriScheme = "mimeview://"

	defaultHistoryLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "handlers",
		Name:        "handlers",
		Description: "Registered handlers in resolution order",
		MIMEType:    "application/json",
	}, s.handleHandlersResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recently opened files, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "types/{type}/{subtype}",
		Name:        "mime-type-handler",
		Description: "The handler that renders a MIME type",
		MIMEType:    "application/json",
	}, s.handleTypeResource)
}

// handleHandlersResource returns the ordered handler list.
func (s *Server) handleHandlersResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	handlers := s.ports.Viewer.Handlers()

	infos := make([]HandlerOutput, len(handlers))
	for i := range handlers {
		infos[i] = *handlerOutput(&handlers[i])
	}
	return jsonResource(req.Params.URI, infos)
}

// handleHistoryResource returns recent open events.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	events, err := s.ports.Viewer.History(ctx, defaultHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	type eventInfo struct {
		ID        string `json:"id"`
		Path      string `json:"path"`
		MIMEType  string `json:"mime_type"`
		HandlerID string `json:"handler_id,omitempty"`
		OpenedAt  string `json:"opened_at"`
	}

	infos := make([]eventInfo, len(events))
	for i := range events {
		infos[i] = eventInfo{
			ID:        events[i].ID,
			Path:      events[i].Path,
			MIMEType:  events[i].MIMEType,
			HandlerID: events[i].HandlerID,
			OpenedAt:  events[i].OpenedAt.Format(time.RFC3339),
		}
	}
	return jsonResource(req.Params.URI, infos)
}

// handleTypeResource returns the handler for the MIME type named in the URI.
func (s *Server) handleTypeResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	mimeType := extractMIMEType(req.Params.URI)
	if mimeType == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	d, ok := s.ports.Viewer.Resolve(mimeType)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, handlerOutput(d))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractMIMEType extracts the MIME type from a URI like mimeview://types/video/mp4.
func extractMIMEType(uri string) string {
	const prefix = uriScheme + "types/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	mimeType := strings.TrimPrefix(uri, prefix)
	typ, subtype, ok := strings.Cut(mimeType, "/")
	if !ok || typ == "" || subtype == "" || strings.Contains(subtype, "/") {
		return ""
	}
	return mimeType
}
