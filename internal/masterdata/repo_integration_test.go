//go:build integration_test || all_tests

package masterdata_test

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/fitnesslog/internal/masterdata"
	"github.com/2beens/fitnesslog/internal/testutil"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo_Integration(t *testing.T) {
	pg := testutil.StartPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	t.Run("exercises crud", func(t *testing.T) {
		pg.Truncate(t)
		repo := masterdata.NewRepo(pg.Pool)

		back := masterdata.MuscleGroupBack
		rowing, err := repo.CreateExercise(ctx, masterdata.ExerciseInput{Name: "rowing", TargetMuscle: &back})
		require.NoError(t, err)
		_, err = repo.CreateExercise(ctx, masterdata.ExerciseInput{Name: "bench press"})
		require.NoError(t, err)

		_, err = repo.CreateExercise(ctx, masterdata.ExerciseInput{Name: "rowing"})
		assert.ErrorIs(t, err, masterdata.ErrExerciseExists)

		exercises, err := repo.ListExercises(ctx)
		require.NoError(t, err)
		require.Len(t, exercises, 2)
		assert.Equal(t, "bench press", exercises[0].Name)
		assert.Equal(t, "rowing", exercises[1].Name)
		require.NotNil(t, exercises[1].TargetMuscle)
		assert.Equal(t, back, *exercises[1].TargetMuscle)

		// served from cache now; a write must invalidate it
		updated, err := repo.UpdateExercise(ctx, rowing.ID, masterdata.ExerciseInput{Name: "barbell row"})
		require.NoError(t, err)
		assert.Nil(t, updated.TargetMuscle)

		exercises, err = repo.ListExercises(ctx)
		require.NoError(t, err)
		assert.Equal(t, "barbell row", exercises[0].Name)

		_, err = repo.UpdateExercise(ctx, 9999, masterdata.ExerciseInput{Name: "ghost"})
		assert.ErrorIs(t, err, masterdata.ErrExerciseNotFound)
		_, err = repo.UpdateExercise(ctx, rowing.ID, masterdata.ExerciseInput{Name: "bench press"})
		assert.ErrorIs(t, err, masterdata.ErrExerciseExists)

		got, err := repo.GetExercise(ctx, rowing.ID)
		require.NoError(t, err)
		assert.Equal(t, "barbell row", got.Name)

		require.NoError(t, repo.DeleteExercise(ctx, rowing.ID))
		assert.ErrorIs(t, repo.DeleteExercise(ctx, rowing.ID), masterdata.ErrExerciseNotFound)
		_, err = repo.GetExercise(ctx, rowing.ID)
		assert.ErrorIs(t, err, masterdata.ErrExerciseNotFound)
	})

	t.Run("exercise in use", func(t *testing.T) {
		pg.Truncate(t)
		repo := masterdata.NewRepo(pg.Pool)

		exerciseID := pg.SeedExercise(t, gofakeit.Word(), nil)
		unitID := pg.SeedUnit(t, "kg")
		_, err := pg.SQL.Exec(`
			WITH d AS (
				INSERT INTO fitness_day (date, timezone, start_time, created_by, updated_by)
				VALUES ('2024-05-01', 'UTC', now(), 1, 1) RETURNING id
			)
			INSERT INTO fitness_set (fitness_day_id, exercise_id, unit_id, weight, reps, created_by, updated_by)
			SELECT d.id, $1, $2, 60, 5, 1, 1 FROM d;`,
			exerciseID, unitID,
		)
		require.NoError(t, err)

		assert.ErrorIs(t, repo.DeleteExercise(ctx, exerciseID), masterdata.ErrExerciseInUse)
	})

	t.Run("units", func(t *testing.T) {
		pg.Truncate(t)
		repo := masterdata.NewRepo(pg.Pool)

		_, err := repo.CreateUnit(ctx, masterdata.UnitInput{Name: "lb"})
		require.NoError(t, err)
		_, err = repo.CreateUnit(ctx, masterdata.UnitInput{Name: "kg"})
		require.NoError(t, err)
		_, err = repo.CreateUnit(ctx, masterdata.UnitInput{Name: "kg"})
		assert.ErrorIs(t, err, masterdata.ErrUnitExists)

		units, err := repo.ListUnits(ctx)
		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Equal(t, "kg", units[0].Name)
		assert.Equal(t, "lb", units[1].Name)
	})
}
