package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/bldgsim/osmodel-mcp/internal/config"
	"github.com/bldgsim/osmodel-mcp/internal/pathres"
	"github.com/bldgsim/osmodel-mcp/internal/session"
)

const (
	// ServerName is the MCP server name
	ServerName = "osmodel-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies.
type Server struct {
	mcp     *server.MCPServer
	cfg     *config.Config
	session *session.Session
	log     zerolog.Logger
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:     mcpServer,
		cfg:     cfg,
		session: session.New(),
		log:     logger,
	}

	s.registerTools()
	return s, nil
}

// Session exposes the current-model slot; used by tests.
func (s *Server) Session() *session.Session {
	return s.session
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// resolver builds a fresh resolver for one tool call. Roots are recomputed
// per call so files uploaded mid-session are found without a restart.
func (s *Server) resolver() *pathres.Resolver {
	return pathres.New(s.cfg.SearchRoots(), s.cfg.Paths.MountRoot)
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	// File and model management
	s.mcp.AddTool(loadOSMModelTool(), s.handleLoadOSMModel)
	s.mcp.AddTool(saveOSMModelTool(), s.handleSaveOSMModel)
	s.mcp.AddTool(convertToIDFTool(), s.handleConvertToIDF)
	s.mcp.AddTool(copyFileTool(), s.handleCopyFile)
	s.mcp.AddTool(findModelFilesTool(), s.handleFindModelFiles)
	s.mcp.AddTool(getModelSummaryTool(), s.handleGetModelSummary)
	s.mcp.AddTool(getBuildingInfoTool(), s.handleGetBuildingInfo)

	// Geometry inspection
	s.mcp.AddTool(listSpacesTool(), s.handleListSpaces)
	s.mcp.AddTool(getSpaceDetailsTool(), s.handleGetSpaceDetails)
	s.mcp.AddTool(listThermalZonesTool(), s.handleListThermalZones)
	s.mcp.AddTool(getThermalZoneDetailsTool(), s.handleGetThermalZoneDetails)

	// Materials, HVAC, loads, schedules
	s.mcp.AddTool(listMaterialsTool(), s.handleListMaterials)
	s.mcp.AddTool(listAirLoopsTool(), s.handleListAirLoops)
	s.mcp.AddTool(listPeopleLoadsTool(), s.handleListPeopleLoads)
	s.mcp.AddTool(listLightingLoadsTool(), s.handleListLightingLoads)
	s.mcp.AddTool(listElectricEquipmentTool(), s.handleListElectricEquipment)
	s.mcp.AddTool(listScheduleRulesetsTool(), s.handleListScheduleRulesets)

	// Simulation results
	s.mcp.AddTool(getTimeseriesFromSQLTool(), s.handleGetTimeseriesFromSQL)

	// Server management
	s.mcp.AddTool(getServerInfoTool(), s.handleGetServerInfo)
	s.mcp.AddTool(getCurrentModelStatusTool(), s.handleGetCurrentModelStatus)
}
