package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"
)

// Version is reported to MCP clients during initialization.
const Version = "1.3.0"

// NewMCPServer creates a configured MCP server with all kentsel tools registered.
func NewMCPServer(cfg Config) *server.MCPServer {
	s := server.NewMCPServer("kentsel", Version, server.WithToolCapabilities(false))
	h := NewHandlers(NewClient(cfg))

	s.AddTool(ToolAnalyzeScenario, h.HandleAnalyzeScenario)
	s.AddTool(ToolPredictScenario, h.HandlePredictScenario)
	s.AddTool(ToolListScenarios, h.HandleListScenarios)
	s.AddTool(ToolSimulateGreen, h.HandleSimulateGreen)
	s.AddTool(ToolListProjects, h.HandleListProjects)
	s.AddTool(ToolGetProject, h.HandleGetProject)
	s.AddTool(ToolCreateProject, h.HandleCreateProject)
	s.AddTool(ToolCompareProjects, h.HandleCompareProjects)
	s.AddTool(ToolScoreRisk, h.HandleScoreRisk)

	return s
}
