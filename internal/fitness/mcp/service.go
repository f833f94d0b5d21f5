package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitnesslog/internal/fitness"
)

type dayReader interface {
	GetDetailByDate(ctx context.Context, date time.Time) (*fitness.DayDetail, error)
	TrainingCalendar(ctx context.Context, year, month int) (map[int]int, error)
}

type logLister interface {
	ListLogs(ctx context.Context, params fitness.LogParams) ([]fitness.LogGroup, error)
}

// contextService is what the tool handlers read from.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListLogs(ctx context.Context, params fitness.LogParams) ([]fitness.LogGroup, error)
	GetDay(ctx context.Context, date time.Time) (*fitness.DayDetailView, error)
	TrainingCalendar(ctx context.Context, year, month int) (map[int]int, error)
}

type ContextService struct {
	schema SchemaRepo
	days   dayReader
	logs   logLister
}

func NewContextService(schema SchemaRepo, days dayReader, logs logLister) *ContextService {
	return &ContextService{
		schema: schema,
		days:   days,
		logs:   logs,
	}
}

// GetSchema renders the fitness tables as markdown, one table per section.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetFitnessColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func (s *ContextService) ListLogs(ctx context.Context, params fitness.LogParams) ([]fitness.LogGroup, error) {
	return s.logs.ListLogs(ctx, params)
}

// GetDay returns nil without error when nothing was logged on date.
func (s *ContextService) GetDay(ctx context.Context, date time.Time) (*fitness.DayDetailView, error) {
	detail, err := s.days.GetDetailByDate(ctx, date)
	if errors.Is(err, fitness.ErrDayNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	view := detail.View()
	return &view, nil
}

func (s *ContextService) TrainingCalendar(ctx context.Context, year, month int) (map[int]int, error) {
	return s.days.TrainingCalendar(ctx, year, month)
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Fitness DB Schema\n\nNo fitness tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tables := make([]string, 0, len(byTable))
	for t := range byTable {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	var b strings.Builder
	b.WriteString("# Fitness DB Schema\n\n")
	b.WriteString("Tables: " + strings.Join(fitnessTables, ", ") + " (schema: public).\n")
	for _, table := range tables {
		b.WriteString("\n## " + table + "\n\n")
		b.WriteString("| Column | Type | Nullable | Default |\n|--------|------|----------|---------|\n")
		for _, c := range byTable[table] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
	}
	return b.String()
}
