package masterdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitnesslog/internal/telemetry/tracing"
	"github.com/2beens/fitnesslog/pkg"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	cacheKeyExercises = "masterdata::exercises"
	cacheKeyUnits     = "masterdata::units"
	listCacheExpire   = 60 * 10 // seconds
)

type Repo struct {
	db    *pgxpool.Pool
	cache *freecache.Cache
	now   func() time.Time
}

func NewRepo(db *pgxpool.Pool) *Repo {
	megabyte := 1024 * 1024
	return &Repo{
		db:    db,
		cache: freecache.NewCache(5 * megabyte),
		now:   time.Now,
	}
}

func (r *Repo) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.masterdata.exercises.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var exercises []Exercise
	if r.fromCache(cacheKeyExercises, &exercises) {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return exercises, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, target_muscle, created_at, created_by, updated_at, updated_by
			FROM exercise
			ORDER BY name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	exercises = make([]Exercise, 0)
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, *ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises rows: %w", err)
	}

	r.toCache(cacheKeyExercises, exercises)
	return exercises, nil
}

func (r *Repo) GetExercise(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.masterdata.exercises.get")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(
		ctx,
		`SELECT id, name, target_muscle, created_at, created_by, updated_at, updated_by
			FROM exercise
			WHERE id = $1;`,
		id,
	)
	ex, err := scanExercise(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, err
	}
	return ex, nil
}

func (r *Repo) CreateExercise(ctx context.Context, input ExerciseInput) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.masterdata.exercises.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	ex := &Exercise{
		Name:         input.Name,
		TargetMuscle: input.TargetMuscle,
		Audit:        pkg.NewAudit(r.now().UTC()),
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise (name, target_muscle, created_at, created_by, updated_at, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		ex.Name, muscleGroupArg(ex.TargetMuscle), ex.CreatedAt, ex.CreatedBy, ex.UpdatedAt, ex.UpdatedBy,
	).Scan(&ex.ID)
	if pkg.IsUniqueViolationError(err) {
		return nil, ErrExerciseExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	r.cache.Del([]byte(cacheKeyExercises))
	return ex, nil
}

// UpdateExercise replaces both name and target muscle, same as a create.
func (r *Repo) UpdateExercise(ctx context.Context, id int, input ExerciseInput) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.masterdata.exercises.update")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(
		ctx,
		`UPDATE exercise SET name = $1, target_muscle = $2, updated_at = $3, updated_by = $4
			WHERE id = $5
		RETURNING id, name, target_muscle, created_at, created_by, updated_at, updated_by;`,
		input.Name, muscleGroupArg(input.TargetMuscle), r.now().UTC(), pkg.ActorID, id,
	)
	ex, err := scanExercise(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if pkg.IsUniqueViolationError(err) {
		return nil, ErrExerciseExists
	}
	if err != nil {
		return nil, err
	}

	r.cache.Del([]byte(cacheKeyExercises))
	return ex, nil
}

func (r *Repo) DeleteExercise(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.masterdata.exercises.delete")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE id = $1;`, id)
	if pkg.IsForeignKeyViolationError(err) {
		return ErrExerciseInUse
	}
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	r.cache.Del([]byte(cacheKeyExercises))
	return nil
}

func (r *Repo) ListUnits(ctx context.Context) (_ []Unit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.masterdata.units.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var units []Unit
	if r.fromCache(cacheKeyUnits, &units) {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return units, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, created_at, created_by, updated_at, updated_by
			FROM unit
			ORDER BY name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query units: %w", err)
	}
	defer rows.Close()

	units = make([]Unit, 0)
	for rows.Next() {
		var u Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.CreatedBy, &u.UpdatedAt, &u.UpdatedBy); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("units rows: %w", err)
	}

	r.toCache(cacheKeyUnits, units)
	return units, nil
}

func (r *Repo) CreateUnit(ctx context.Context, input UnitInput) (_ *Unit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.masterdata.units.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	u := &Unit{
		Name:  input.Name,
		Audit: pkg.NewAudit(r.now().UTC()),
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO unit (name, created_at, created_by, updated_at, updated_by)
			VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`,
		u.Name, u.CreatedAt, u.CreatedBy, u.UpdatedAt, u.UpdatedBy,
	).Scan(&u.ID)
	if pkg.IsUniqueViolationError(err) {
		return nil, ErrUnitExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert unit: %w", err)
	}

	r.cache.Del([]byte(cacheKeyUnits))
	return u, nil
}

func (r *Repo) fromCache(key string, target any) bool {
	cached, err := r.cache.Get([]byte(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(cached, target); err != nil {
		log.Errorf("unmarshal cached %s: %s", key, err)
		return false
	}
	log.Tracef("%s served from cache", key)
	return true
}

func (r *Repo) toCache(key string, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("marshal %s for cache: %s", key, err)
		return
	}
	if err := r.cache.Set([]byte(key), valueBytes, listCacheExpire); err != nil {
		log.Errorf("set %s cache: %s", key, err)
	}
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	var ex Exercise
	var targetMuscle *string
	if err := row.Scan(
		&ex.ID, &ex.Name, &targetMuscle,
		&ex.CreatedAt, &ex.CreatedBy, &ex.UpdatedAt, &ex.UpdatedBy,
	); err != nil {
		return nil, err
	}
	if targetMuscle != nil {
		mg, err := ParseMuscleGroup(*targetMuscle)
		if err != nil {
			return nil, fmt.Errorf("exercise %d: %w", ex.ID, err)
		}
		ex.TargetMuscle = &mg
	}
	return &ex, nil
}

func muscleGroupArg(mg *MuscleGroup) *string {
	if mg == nil {
		return nil
	}
	s := string(*mg)
	return &s
}
