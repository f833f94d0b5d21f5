package mcp

import (
	"context"
	"fmt"

	"github.com/2beens/fitnesslog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaRepo reads column metadata of the fitness tables from information_schema.
type SchemaRepo interface {
	GetFitnessColumns(ctx context.Context) ([]SchemaColumn, error)
}

type SchemaColumn struct {
	TableName  string
	ColumnName string
	DataType   string
	IsNullable string
	ColumnDef  *string
}

var fitnessTables = []string{"fitness_day", "fitness_set", "exercise", "unit"}

type poolSchemaRepo struct {
	pool *pgxpool.Pool
}

func NewPoolSchemaRepo(pool *pgxpool.Pool) SchemaRepo {
	return &poolSchemaRepo{pool: pool}
}

func (r *poolSchemaRepo) GetFitnessColumns(ctx context.Context) (_ []SchemaColumn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mcp.schema_columns")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.pool.Query(
		ctx,
		`SELECT table_name, column_name, data_type, is_nullable, column_default
			FROM information_schema.columns
			WHERE table_schema = 'public' AND table_name = ANY($1)
			ORDER BY table_name, ordinal_position;`,
		fitnessTables,
	)
	if err != nil {
		return nil, fmt.Errorf("query information_schema: %w", err)
	}
	defer rows.Close()

	var cols []SchemaColumn
	for rows.Next() {
		var c SchemaColumn
		if err := rows.Scan(&c.TableName, &c.ColumnName, &c.DataType, &c.IsNullable, &c.ColumnDef); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("columns rows: %w", err)
	}
	return cols, nil
}
