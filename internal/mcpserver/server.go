// Package mcpserver exposes the divination engine as Model Context Protocol
// tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jwulff/zen/internal/iching"
	"github.com/jwulff/zen/internal/render"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// LookupResponse is the structured result of lookup_hexagram.
type LookupResponse struct {
	Key      iching.Key      `json:"key" jsonschema_description:"The (upper, lower) trigram pair"`
	Found    bool            `json:"found" jsonschema_description:"False when the text is a placeholder"`
	Hexagram iching.Hexagram `json:"hexagram"`
}

// DrawArgs takes no parameters.
type DrawArgs struct{}

// LookupArgs addresses a catalog slot.
type LookupArgs struct {
	Upper int `json:"upper"`
	Lower int `json:"lower"`
}

// Server wraps the engine and exposes it as an MCP server.
type Server struct {
	engine    *iching.Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server over engine.
func NewServer(engine *iching.Engine, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("zen-mcp", version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	drawTool := mcp.NewTool("draw_hexagram",
		mcp.WithDescription("Draw a random I Ching hexagram: lower trigram, upper trigram and moving line, with its judgment, line texts and commentaries."),
		mcp.WithOutputSchema[render.ResultJSON](),
	)
	s.mcpServer.AddTool(drawTool, mcp.NewStructuredToolHandler(s.handleDraw))

	lookupTool := mcp.NewTool("lookup_hexagram",
		mcp.WithDescription("Look up the text of the hexagram formed by an upper and a lower trigram (ids 1-8: 乾 兑 离 震 巽 坎 艮 坤)."),
		mcp.WithNumber("upper", mcp.Required(), mcp.Description("Upper trigram id, 1-8"), mcp.Min(1), mcp.Max(8)),
		mcp.WithNumber("lower", mcp.Required(), mcp.Description("Lower trigram id, 1-8"), mcp.Min(1), mcp.Max(8)),
		mcp.WithOutputSchema[LookupResponse](),
	)
	s.mcpServer.AddTool(lookupTool, mcp.NewStructuredToolHandler(s.handleLookup))
}

func (s *Server) handleDraw(ctx context.Context, request mcp.CallToolRequest, args DrawArgs) (render.ResultJSON, error) {
	r := s.engine.Draw()
	s.logger.Info("MCP draw", "upper", r.Upper.ID, "lower", r.Lower.ID, "moving_line", r.MovingLine)
	return render.NewResultJSON(r), nil
}

func (s *Server) handleLookup(ctx context.Context, request mcp.CallToolRequest, args LookupArgs) (LookupResponse, error) {
	key := iching.Key{Upper: args.Upper, Lower: args.Lower}
	if err := key.Validate(); err != nil {
		s.logger.Warn("MCP lookup rejected", "error", err)
		return LookupResponse{}, fmt.Errorf("lookup: %w", err)
	}
	resp := LookupResponse{Key: key}
	h, ok := s.engine.Catalog().Lookup(key.Upper, key.Lower)
	if ok {
		resp.Found = true
		resp.Hexagram = h
	} else {
		resp.Hexagram = iching.Fallback(iching.TrigramByID(key.Upper), iching.TrigramByID(key.Lower))
	}
	return resp, nil
}
