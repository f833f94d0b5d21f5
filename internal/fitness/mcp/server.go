// Package mcp exposes the training log to MCP clients, over stdio (cmd/fitness_mcp)
// or streamable HTTP mounted at /mcp on the main service.
package mcp

import (
	"net/http"

	"github.com/2beens/fitnesslog/internal/fitness"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "fitnesslog-context"
	serverVersion = "1.0.0"
)

// NewServer builds an MCP server with the read-only fitness tools.
func NewServer(pool *pgxpool.Pool, days *fitness.DayService, logs *fitness.LogService) *mcp.Server {
	return newServer(NewContextService(NewPoolSchemaRepo(pool), days, logs))
}

func newServer(svc contextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fitness_schema",
		Description: "Returns the DB schema of the fitness tables (fitness_day, fitness_set, exercise, unit): columns, types, nullable, default.",
	}, h.GetFitnessSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fitness_logs",
		Description: "Returns logged sets grouped by training day, newest first. Optional: from_date, to_date (YYYY-MM-DD, inclusive), exercise_name (substring, case-insensitive). Use to review what was trained in a period or how an exercise progressed.",
	}, h.GetFitnessLogsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fitness_day",
		Description: "Returns one training day with its sets grouped by exercise. Arg: date (YYYY-MM-DD, local calendar date).",
	}, h.GetFitnessDayTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_calendar",
		Description: "Returns the days of a month on which training was logged, as day-of-month to fitness day id. Args: year, month (1-12).",
	}, h.GetTrainingCalendarTool())

	return s
}

// NewHTTPHandler serves the given MCP server over streamable HTTP.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
