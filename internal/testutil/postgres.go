//go:build integration_test || all_tests

// Package testutil starts throwaway dependencies for integration tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/2beens/fitnesslog/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const testDBName = "fitnesslog_test"

type Postgres struct {
	Pool *pgxpool.Pool
	// SQL is a database/sql handle on the same database, for fixtures and cleanup
	SQL  *sql.DB
	Port string
}

// StartPostgres runs a postgres container, applies the schema and registers teardown on t.
func StartPostgres(t *testing.T) *Postgres {
	t.Helper()
	ctx := context.Background()

	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err, "create dockertest pool")
	require.NoError(t, dockerPool.Client.Ping(), "ping docker")
	dockerPool.MaxWait = 90 * time.Second

	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "run postgres")
	t.Cleanup(func() {
		if err := pgResource.Close(); err != nil {
			t.Logf("postgres teardown: %s", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, testDBName)

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, dockerPool.Retry(sqlDB.Ping), "connect to postgres")
	t.Cleanup(func() { _ = sqlDB.Close() })

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: pgPort,
		DBName: testDBName,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.ApplySchema(ctx, pool))

	return &Postgres{
		Pool: pool,
		SQL:  sqlDB,
		Port: pgPort,
	}
}

// Truncate empties every table and resets id sequences.
func (p *Postgres) Truncate(t *testing.T) {
	t.Helper()
	_, err := p.SQL.Exec(`TRUNCATE fitness_set, fitness_day, exercise, unit RESTART IDENTITY CASCADE;`)
	require.NoError(t, err)
}

// SeedExercise inserts an exercise and returns its id.
func (p *Postgres) SeedExercise(t *testing.T, name string, targetMuscle *string) int {
	t.Helper()
	var id int
	err := p.SQL.QueryRow(
		`INSERT INTO exercise (name, target_muscle, created_by, updated_by) VALUES ($1, $2, 1, 1) RETURNING id;`,
		name, targetMuscle,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedUnit inserts a unit and returns its id.
func (p *Postgres) SeedUnit(t *testing.T, name string) int {
	t.Helper()
	var id int
	err := p.SQL.QueryRow(
		`INSERT INTO unit (name, created_by, updated_by) VALUES ($1, 1, 1) RETURNING id;`,
		name,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
