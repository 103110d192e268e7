// Package mcp exposes the layout engine to MCP clients over stdio, so
// agents can compute and inspect layouts without shelling out.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/stacktile/layouts"
)

const (
	ServerName    = "stacktile"
	ServerVersion = "0.1.0"
)

// Server is the MCP server wrapping a layout registry.
type Server struct {
	mcpServer *mcpsdk.Server
	registry  *layouts.Registry
}

// NewServer creates an MCP server exposing the given registry.
func NewServer(registry *layouts.Registry) *Server {
	s := &Server{
		mcpServer: mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		}, nil),
		registry: registry,
	}
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_layouts",
		Description: "List the available layouts with their full definitions. Pass query to fuzzy-filter by name.",
	}, s.handleListLayouts)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "apply_layout",
		Description: "Compute the window rectangles a layout produces for a given window count and workspace. Rectangles are returned in canonical window order: main windows first, then the first stack, then the second.",
	}, s.handleApplyLayout)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "preview_layout",
		Description: "Render a layout as ASCII art for a given window count. Useful for eyeballing a layout before applying it.",
	}, s.handlePreviewLayout)
}
