// Package tools provides MCP tool implementations for skytrack-mcp.
package tools

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/skytrack/skytrack-mcp/pkg/n2yo"
)

// SatelliteToolDeps contains dependencies for the satellite tools.
type SatelliteToolDeps struct {
	Client  *n2yo.Client
	Logger  *zap.Logger
	Version string
}

// RegisterSatelliteTools registers every satellite MCP tool.
func RegisterSatelliteTools(s *server.MCPServer, deps *SatelliteToolDeps) {
	registerGetTLETool(s, deps)
	registerGetPositionsTool(s, deps)
	registerGetVisualPassesTool(s, deps)
	registerGetRadioPassesTool(s, deps)
	registerGetAboveTool(s, deps)
	registerSearchSatellitesTool(s, deps)
	registerHealthTool(s, deps)
}
