package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/billplz/internal/service"
)

const (
	Name         = "billplz"
	Instructions = "Billplz payment gateway MCP server. Manage collections, bills, payouts, and bank verifications."
)

func New(svc *service.ToolService, version string) *server.MCPServer {
	s := server.NewMCPServer(Name, version,
		server.WithToolCapabilities(false),
		server.WithInstructions(Instructions),
	)

	for _, t := range svc.Tools() {
		s.AddTool(buildTool(t), handleTool(svc, t.Name))
	}
	return s
}

// Serve runs the server over stdin/stdout until the input closes.
func Serve(svc *service.ToolService, version string) error {
	log.Info().Str("transport", "stdio").Msg("starting mcp server")
	if err := server.ServeStdio(New(svc, version)); err != nil {
		return fmt.Errorf("serve mcp: %w", err)
	}
	return nil
}

func buildTool(t *service.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}

	for _, p := range t.Params {
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			props = append(props, mcp.Required())
		}

		switch p.Type {
		case service.ParamInteger:
			opts = append(opts, mcp.WithNumber(p.Name, props...))
		case service.ParamBoolean:
			opts = append(opts, mcp.WithBoolean(p.Name, props...))
		case service.ParamArray:
			props = append(props, mcp.Items(map[string]any{"type": "object"}))
			opts = append(opts, mcp.WithArray(p.Name, props...))
		default:
			opts = append(opts, mcp.WithString(p.Name, props...))
		}
	}

	return mcp.NewTool(t.Name, opts...)
}

// handleTool reports every failure as a tool error result so the model sees
// the message; the protocol-level error is reserved for the transport.
func handleTool(svc *service.ToolService, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError("Error: " + err.Error()), nil
		}

		input, err := svc.Decode(name, args)
		if err != nil {
			return mcp.NewToolResultError("Error: " + err.Error()), nil
		}

		res, err := svc.Invoke(ctx, name, input)
		if err != nil {
			return mcp.NewToolResultError("Error: " + err.Error()), nil
		}

		text, err := res.Text()
		if err != nil {
			return mcp.NewToolResultError("Error: " + err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}
