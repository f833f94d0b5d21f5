package fitness

import (
	"context"

	"github.com/2beens/fitnesslog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type LogService struct {
	store Store
}

func NewLogService(store Store) *LogService {
	return &LogService{
		store: store,
	}
}

// ListLogs returns logged sets grouped by day, newest day first.
// From and To are inclusive; ExerciseName matches case-insensitively anywhere in the name.
func (s *LogService) ListLogs(ctx context.Context, params LogParams) (_ []LogGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.logs.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if params.From != nil && params.To != nil && params.From.After(*params.To) {
		return make([]LogGroup, 0), nil
	}

	var entries []LogEntry
	err = s.store.ReadTx(ctx, func(q Queries) error {
		entries, err = q.LogEntries(ctx, params)
		return err
	})
	if err != nil {
		return nil, err
	}

	groups := groupLogEntries(entries)
	span.SetAttributes(attribute.Int("groups", len(groups)), attribute.Int("sets", len(entries)))
	return groups, nil
}
