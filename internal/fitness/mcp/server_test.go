package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/fitnesslog/internal/fitness"
	"github.com/2beens/fitnesslog/internal/telemetry/metrics"
	"github.com/2beens/fitnesslog/internal/timezone"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ToolsOverInMemoryTransport(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store := fitness.NewTestStore()
	benchID := store.AddExercise("Bench Press")
	kgID := store.AddUnit("kg")
	metricsManager := metrics.NewTestManager()
	resolver := timezone.NewResolver(func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) })
	days := fitness.NewDayService(store, resolver, metricsManager)
	sets := fitness.NewSetService(store, days, metricsManager)
	_, err := sets.Create(ctx, fitness.CreateSetInput{ExerciseID: benchID, UnitID: kgID, Weight: 60}, "UTC")
	require.NoError(t, err)

	server := newServer(NewContextService(&mockSchemaRepo{}, days, fitness.NewLogService(store)))
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"get_fitness_schema", "get_fitness_logs", "get_fitness_day", "get_training_calendar"}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_fitness_logs",
		Arguments: map[string]any{"exercise_name": "bench"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), `"exercise": "Bench Press"`)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_training_calendar",
		Arguments: map[string]any{"year": 2024, "month": 5},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"training_days":{"1":1}}`, resultText(t, res))

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_fitness_day",
		Arguments: map[string]any{"date": "2024-04-30"},
	})
	require.NoError(t, err)
	assert.Equal(t, "No fitness day logged on 2024-04-30", resultText(t, res))
}
