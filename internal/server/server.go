// Package server provides the MCP server wrapper with lifecycle management.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with dependencies and lifecycle management.
type Server struct {
	mcp    *mcp.Server
	logger *slog.Logger
}

// New creates a new MCP server with the given name, version and logger.
func New(name, version string, logger *slog.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    name,
		Version: version,
	}

	mcpServer := mcp.NewServer(impl, nil)

	return &Server{
		mcp:    mcpServer,
		logger: logger,
	}
}

// Run starts the server on stdio transport and blocks until disconnect or context cancellation.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server", "transport", "stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler serves the same MCP server over the streamable HTTP transport.
// Every session shares the one server and its tools.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}

// MCPServer returns the underlying MCP server for tool registration.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Setup adds middleware to the server (logging, request IDs).
func (s *Server) Setup() {
	s.mcp.AddReceivingMiddleware(LoggingMiddleware(s.logger))
}
