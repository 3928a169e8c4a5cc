// Package mcpserver serves the Thordata tool surface over the Model
// Context Protocol's stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	thordatamcp "github.com/thordata/thordata-mcp"
	"github.com/thordata/thordata-mcp/slogger"
)

const (
	DefaultName    = "Thordata Tools"
	DefaultVersion = "0.1.0"
)

// DefaultInstructions is shown to MCP hosts when the server connects.
const DefaultInstructions = "This server exposes Thordata-powered web tools. " +
	"Use search or search_news for real-time information, read_page to fetch " +
	"a page as cleaned plain text, and extract_links to list the hyperlinks " +
	"on a page."

// Option is a function that modifies the server configuration.
type Option func(*Server)

// WithName sets the server name advertised to hosts.
func WithName(name string) Option {
	return func(s *Server) {
		s.name = name
	}
}

// WithVersion sets the server version advertised to hosts.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithInstructions sets the usage instructions advertised to hosts.
func WithInstructions(instructions string) Option {
	return func(s *Server) {
		s.instructions = instructions
	}
}

// WithLogger sets the logger. Logs go to stderr sinks only; stdout
// belongs to the stdio transport.
func WithLogger(logger slogger.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTools registers tools at construction time.
func WithTools(tools ...thordatamcp.Tool) Option {
	return func(s *Server) {
		s.pending = append(s.pending, tools...)
	}
}

// Server wraps an MCP stdio server around a set of tools.
type Server struct {
	name         string
	version      string
	instructions string
	logger       slogger.Logger
	tools        map[string]thordatamcp.Tool
	pending      []thordatamcp.Tool
	mcpServer    *server.MCPServer
}

// New creates a server and registers any tools given via WithTools.
func New(opts ...Option) *Server {
	s := &Server{
		name:         DefaultName,
		version:      DefaultVersion,
		instructions: DefaultInstructions,
		logger:       slogger.DefaultLogger,
		tools:        make(map[string]thordatamcp.Tool),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slogger.NewDevNullLogger()
	}
	s.mcpServer = server.NewMCPServer(
		s.name,
		s.version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(s.instructions),
	)
	for _, tool := range s.pending {
		if err := s.AddTool(tool); err != nil {
			s.logger.Error("failed to register tool",
				"tool", tool.Name(),
				"error", err.Error(),
			)
		}
	}
	s.pending = nil
	return s
}

// AddTool registers a tool with the server. Registering the same name
// again replaces the earlier tool.
func (s *Server) AddTool(tool thordatamcp.Tool) error {
	mcpTool, err := convertTool(tool)
	if err != nil {
		return err
	}
	s.mcpServer.AddTool(mcpTool, s.handler(tool))
	s.tools[tool.Name()] = tool
	return nil
}

// ToolNames lists the registered tool names in sorted order.
func (s *Server) ToolNames() []string {
	names := make([]string, 0, len(s.tools))
	for name := range s.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ServeStdio blocks, serving requests on stdin and responses on stdout,
// until the host closes the transport.
func (s *Server) ServeStdio() error {
	s.logger.Info("mcp server starting",
		"name", s.name,
		"version", s.version,
		"tools", len(s.tools),
	)
	err := server.ServeStdio(s.mcpServer)
	if err != nil {
		s.logger.Error("mcp server stopped", "error", err.Error())
		return err
	}
	s.logger.Info("mcp server stopped")
	return nil
}

// convertTool maps a tool onto its MCP wire representation.
func convertTool(tool thordatamcp.Tool) (mcp.Tool, error) {
	schemaJSON, err := json.Marshal(tool.Schema())
	if err != nil {
		return mcp.Tool{}, fmt.Errorf("failed to marshal schema for tool %s: %w", tool.Name(), err)
	}
	mcpTool := mcp.NewToolWithRawSchema(tool.Name(), tool.Description(), schemaJSON)
	if ann := tool.Annotations(); ann != nil {
		mcpTool.Annotations = mcp.ToolAnnotation{
			Title:           ann.Title,
			ReadOnlyHint:    mcp.ToBoolPtr(ann.ReadOnlyHint),
			DestructiveHint: mcp.ToBoolPtr(ann.DestructiveHint),
			IdempotentHint:  mcp.ToBoolPtr(ann.IdempotentHint),
			OpenWorldHint:   mcp.ToBoolPtr(ann.OpenWorldHint),
		}
	}
	return mcpTool, nil
}

// handler adapts a tool call to the MCP calling convention. Tool
// failures ride inside the result; a Go error escapes only for
// cancellation or marshaling problems.
func (s *Server) handler(tool thordatamcp.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, err := json.Marshal(req.GetArguments())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal arguments for tool %s: %w", tool.Name(), err)
		}
		s.logger.Debug("tool call", "tool", tool.Name())
		result, err := tool.Call(ctx, json.RawMessage(input))
		if err != nil {
			return nil, err
		}
		if result.IsError {
			return mcp.NewToolResultError(result.Text()), nil
		}
		return mcp.NewToolResultText(result.Text()), nil
	}
}
