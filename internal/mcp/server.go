package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/cantonlabs/ledgerview/internal/dispatch"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "Canton Ledgerview Assistant"
	serverVersion = "0.1.0"
)

// Server binds the operation registry to the MCP stdio protocol. It is
// a pure framing layer: every call is delegated verbatim to the shared
// dispatcher, so the native and HTTP paths cannot drift apart.
type Server struct {
	mcp        *server.MCPServer
	dispatcher *dispatch.Dispatcher
}

// NewServer creates the MCP server with every registered operation
// bound, one registration per tool and resource.
func NewServer(dispatcher *dispatch.Dispatcher) *Server {
	s := &Server{
		mcp:        server.NewMCPServer(serverName, serverVersion),
		dispatcher: dispatcher,
	}
	s.registerOperations()
	return s
}

// registerOperations mirrors the registry into MCP registrations.
func (s *Server) registerOperations() {
	for _, tool := range s.dispatcher.Registry().Tools() {
		opts := []mcp.ToolOption{mcp.WithDescription(tool.Description)}
		for _, param := range tool.Params {
			propOpts := []mcp.PropertyOption{mcp.Description(param.Description)}
			if param.Required {
				propOpts = append(propOpts, mcp.Required())
			}
			if param.Default != "" {
				propOpts = append(propOpts, mcp.DefaultString(param.Default))
			}
			opts = append(opts, mcp.WithString(param.Name, propOpts...))
		}
		s.mcp.AddTool(mcp.NewTool(tool.Name, opts...), s.toolHandler(tool.Name))
	}

	for _, res := range s.dispatcher.Registry().Resources() {
		s.mcp.AddResource(mcp.NewResource(res.URI, res.Name,
			mcp.WithResourceDescription(res.Description),
			mcp.WithMIMEType(res.MIMEType),
		), s.resourceHandler(res.URI, res.MIMEType))
	}
}

// toolHandler adapts one registry tool to the MCP handler signature.
func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.dispatcher.CallTool(name, request.GetArguments())
		if err != nil {
			// Unknown name cannot happen for a bound handler; any
			// dispatch error here is a protocol-level failure.
			return nil, err
		}
		if result.IsError {
			return mcp.NewToolResultError(result.Text), nil
		}
		return mcp.NewToolResultText(result.Text), nil
	}
}

// resourceHandler adapts one registry resource to the MCP handler
// signature.
func (s *Server) resourceHandler(uri, mimeType string) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := s.dispatcher.ReadResource(uri)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: mimeType,
				Text:     text,
			},
		}, nil
	}
}

// Serve starts the MCP server on stdio transport. A single call fully
// completes before the next message is read.
func (s *Server) Serve() error {
	stdioServer := server.NewStdioServer(s.mcp)
	ctx := context.Background()
	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("failed to serve MCP: %w", err)
	}
	return nil
}
