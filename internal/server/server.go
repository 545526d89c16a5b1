// Package server registers the hosting tools on an MCP server and dispatches
// tool calls. All errors crossing the protocol boundary go through the
// errors.ToRPC translator exactly once.
package server

import (
	"context"
	"encoding/json"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	internalcmd "github.com/hostfleet/hostmcp/internal/cmd"
	"github.com/hostfleet/hostmcp/internal/config"
	"github.com/hostfleet/hostmcp/internal/contracts"
	"github.com/hostfleet/hostmcp/internal/errors"
)

const serverName = "hostmcp"

// Server wraps the MCP server with the registered tool catalog.
type Server struct {
	logger hclog.Logger
	mcp    *server.MCPServer
	tools  []mcp.Tool
}

// New builds an MCP server exposing the provider API as tools, filtered by
// the configured allowlist.
func New(logger hclog.Logger, api contracts.HostingAPI, cfg *config.Config) *Server {
	s := &Server{
		logger: logger.Named("mcp"),
		mcp: server.NewMCPServer(
			serverName,
			internalcmd.Version(),
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
	}

	for _, def := range Catalog(api) {
		if !cfg.ToolAllowed(def.Tool.Name) {
			s.logger.Debug("Tool excluded by allowlist", "tool", def.Tool.Name)
			continue
		}
		s.mcp.AddTool(def.Tool, s.wrap(def))
		s.tools = append(s.tools, def.Tool)
	}

	s.logger.Info("Registered tools", "count", len(s.tools))

	return s
}

// Tools returns the registered tool definitions, in registration order.
func (s *Server) Tools() []mcp.Tool {
	out := make([]mcp.Tool, len(s.tools))
	copy(out, s.tools)
	return out
}

// Serve runs the MCP server over stdio until the context is canceled or the
// client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("Serving MCP over stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}

// wrap adapts a ToolDef into the mcp-go handler signature. Argument
// validation happens before the handler runs; any failure is translated to
// its protocol representation here and nowhere else.
func (s *Server) wrap(def ToolDef) server.ToolHandlerFunc {
	name := def.Tool.Name

	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		if err := validateArgs(def.Tool, args); err != nil {
			rpcErr := errors.ToRPC(err)
			s.logger.Debug("Tool arguments rejected", "tool", name, "error", rpcErr.Message)
			return mcp.NewToolResultError(rpcErr.Message), nil
		}

		s.logger.Debug("Tool call", "tool", name)

		out, err := def.Handle(ctx, args)
		if err != nil {
			rpcErr := errors.ToRPC(err)
			s.logger.Error("Tool call failed", "tool", name, "rpcCode", rpcErr.Code, "error", rpcErr.Message)
			return mcp.NewToolResultError(rpcErr.Message), nil
		}

		payload, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			rpcErr := errors.ToRPC(err)
			s.logger.Error("Tool result encoding failed", "tool", name, "error", rpcErr.Message)
			return mcp.NewToolResultError(rpcErr.Message), nil
		}

		return mcp.NewToolResultText(string(payload)), nil
	}
}
