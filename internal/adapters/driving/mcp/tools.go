package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/mimeview/internal/core/domain"
)

// ResolveInput is the input schema for the resolve_mime_type tool.
type ResolveInput struct {
	MIMEType string `json:"mime_type" jsonschema:"the MIME type reported for a file, e.g. video/mp4"`
}

// ResolveOutput is the output schema for the resolve_mime_type tool.
type ResolveOutput struct {
	MIMEType string         `json:"mime_type"`
	Matched  bool           `json:"matched"`
	Handler  *HandlerOutput `json:"handler,omitempty"`
	Fallback string         `json:"fallback,omitempty"`
}

// ListHandlersInput is the (empty) input schema for the list_handlers tool.
type ListHandlersInput struct{}

// ListHandlersOutput is the output schema for the list_handlers tool.
type ListHandlersOutput struct {
	Handlers []HandlerOutput `json:"handlers"`
	Count    int             `json:"count"`
}

// InspectInput is the input schema for the inspect_file tool.
type InspectInput struct {
	Path string `json:"path" jsonschema:"absolute path of a local file"`
}

// InspectOutput is the output schema for the inspect_file tool.
type InspectOutput struct {
	Path     string         `json:"path"`
	MIMEType string         `json:"mime_type"`
	Size     int64          `json:"size"`
	Matched  bool           `json:"matched"`
	Handler  *HandlerOutput `json:"handler,omitempty"`
	Fallback string         `json:"fallback,omitempty"`
}

// HandlerOutput describes a registered handler.
type HandlerOutput struct {
	ID        string            `json:"id"`
	Group     string            `json:"group,omitempty"`
	MIMETypes []string          `json:"mime_types"`
	Aliases   map[string]string `json:"aliases,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_mime_type",
		Description: "Find the handler that renders a MIME type",
	}, s.handleResolve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_handlers",
		Description: "List registered handlers in resolution order",
	}, s.handleListHandlers)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inspect_file",
		Description: "Detect a local file's MIME type and the handler that would render it",
	}, s.handleInspect)
}

// handleResolve handles the resolve_mime_type tool invocation.
func (s *Server) handleResolve(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	output := ResolveOutput{MIMEType: input.MIMEType}

	d, ok := s.ports.Viewer.Resolve(input.MIMEType)
	if !ok {
		output.Fallback = string(domain.FallbackDownload)
		return nil, output, nil
	}

	output.Matched = true
	output.Handler = handlerOutput(d)
	return nil, output, nil
}

// handleListHandlers handles the list_handlers tool invocation.
func (s *Server) handleListHandlers(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListHandlersInput,
) (*mcp.CallToolResult, ListHandlersOutput, error) {
	handlers := s.ports.Viewer.Handlers()

	output := ListHandlersOutput{
		Handlers: make([]HandlerOutput, len(handlers)),
		Count:    len(handlers),
	}
	for i := range handlers {
		output.Handlers[i] = *handlerOutput(&handlers[i])
	}
	return nil, output, nil
}

// handleInspect handles the inspect_file tool invocation.
func (s *Server) handleInspect(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InspectInput,
) (*mcp.CallToolResult, InspectOutput, error) {
	res, err := s.ports.Viewer.Inspect(ctx, input.Path)
	if err != nil {
		return nil, InspectOutput{}, err
	}

	output := InspectOutput{
		Path:     res.File.Path,
		MIMEType: res.File.MIMEType,
		Size:     res.File.Size,
		Matched:  res.Matched(),
		Fallback: string(res.Fallback),
	}
	if res.Matched() {
		output.Handler = handlerOutput(res.Handler)
	}
	return nil, output, nil
}

func handlerOutput(d *domain.HandlerDescriptor) *HandlerOutput {
	out := &HandlerOutput{
		ID:        d.ID,
		Group:     d.Group,
		MIMETypes: append([]string(nil), d.MIMETypes...),
	}
	if len(d.Aliases) > 0 {
		out.Aliases = make(map[string]string, len(d.Aliases))
		for k, v := range d.Aliases {
			out.Aliases[k] = v
		}
	}
	return out
}
