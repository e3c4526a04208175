package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Plonkout", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Plonkout workout log server. Query logged workouts, personal records, and the exercise catalog, or export the full database."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkoutLog, Handler: h.getWorkoutLog},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolGetMaxWeight, Handler: h.getMaxWeight},
		server.ServerTool{Tool: toolGetDataStats, Handler: h.getDataStats},
		server.ServerTool{Tool: toolExportData, Handler: h.exportData},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resRecentWorkouts = mcp.NewResource(
	"plonkout://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("Workouts from the last 30 days, newest first"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseCatalog = mcp.NewResource(
	"plonkout://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All catalog exercises with muscle group, type, and single-arm flag"),
	mcp.WithMIMEType("application/json"),
)
