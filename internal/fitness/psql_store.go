package fitness

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitnesslog/internal/masterdata"
	"github.com/2beens/fitnesslog/internal/telemetry/tracing"
	"github.com/2beens/fitnesslog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// advisory lock class for per-date fitness day locks
const dateLockClass = 7301

type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PsqlStore struct {
	db *pgxpool.Pool
}

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

func (s *PsqlStore) InTx(ctx context.Context, fn func(q Queries) error) error {
	return s.runTx(ctx, pgx.TxOptions{}, fn)
}

func (s *PsqlStore) ReadTx(ctx context.Context, fn func(q Queries) error) error {
	return s.runTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (s *PsqlStore) runTx(ctx context.Context, opts pgx.TxOptions, fn func(q Queries) error) (err error) {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				log.Errorf("rollback tx: %s", rbErr)
			}
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit tx: %w", err)
		}
	}()

	return fn(&psqlQueries{db: tx})
}

type psqlQueries struct {
	db dbtx
}

const daySelect = `SELECT id, date, timezone, primary_muscles, start_time, end_time,
		created_at, created_by, updated_at, updated_by
	FROM fitness_day`

const setSelect = `SELECT id, fitness_day_id, exercise_id, set_type, weight, reps, unit_id, remark,
		created_at, created_by, updated_at, updated_by
	FROM fitness_set`

func (q *psqlQueries) LockDate(ctx context.Context, date time.Time) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.day.lock_date")
	defer span.End()

	if _, err := q.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1::int4, $2::int4);`, dateLockClass, dateLockKey(date)); err != nil {
		return fmt.Errorf("lock date %s: %w", dateString(date), err)
	}
	return nil
}

// dateLockKey is unique per calendar date, e.g. 2024-06-01 -> 2024153.
func dateLockKey(date time.Time) int32 {
	return int32(date.Year()*1000 + date.YearDay())
}

func (q *psqlQueries) DayByDate(ctx context.Context, date time.Time) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.day.by_date")
	span.SetAttributes(attribute.String("date", dateString(date)))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return scanDay(q.db.QueryRow(ctx, daySelect+` WHERE date = $1;`, date))
}

func (q *psqlQueries) DayByID(ctx context.Context, id int) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.day.by_id")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return scanDay(q.db.QueryRow(ctx, daySelect+` WHERE id = $1;`, id))
}

func (q *psqlQueries) LockDay(ctx context.Context, id int) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.day.lock")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return scanDay(q.db.QueryRow(ctx, daySelect+` WHERE id = $1 FOR UPDATE;`, id))
}

func (q *psqlQueries) InsertDay(ctx context.Context, day *Day) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.day.insert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = q.db.QueryRow(
		ctx,
		`INSERT INTO fitness_day
				(date, timezone, primary_muscles, start_time, end_time, created_at, created_by, updated_at, updated_by)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		day.Date, day.Timezone, muscleGroupsArg(day.PrimaryMuscles), day.StartTime, day.EndTime,
		day.CreatedAt, day.CreatedBy, day.UpdatedAt, day.UpdatedBy,
	).Scan(&day.ID)
	if err != nil {
		return fmt.Errorf("insert fitness day: %w", err)
	}
	return nil
}

func (q *psqlQueries) UpdateDay(ctx context.Context, day *Day) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.day.update")
	span.SetAttributes(attribute.Int("id", day.ID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := q.db.Exec(
		ctx,
		`UPDATE fitness_day SET primary_muscles = $1, end_time = $2, updated_at = $3, updated_by = $4
			WHERE id = $5;`,
		muscleGroupsArg(day.PrimaryMuscles), day.EndTime, day.UpdatedAt, day.UpdatedBy, day.ID,
	)
	if err != nil {
		return fmt.Errorf("update fitness day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDayNotFound
	}
	return nil
}

func (q *psqlQueries) DeleteDay(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.day.delete")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if _, err := q.db.Exec(ctx, `DELETE FROM fitness_set WHERE fitness_day_id = $1;`, id); err != nil {
		return fmt.Errorf("delete fitness day sets: %w", err)
	}
	tag, err := q.db.Exec(ctx, `DELETE FROM fitness_day WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete fitness day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDayNotFound
	}
	return nil
}

func (q *psqlQueries) DaysBetween(ctx context.Context, from, to time.Time) (_ []Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.day.between")
	span.SetAttributes(
		attribute.String("from", dateString(from)),
		attribute.String("to", dateString(to)),
	)
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := q.db.Query(ctx, daySelect+` WHERE date BETWEEN $1 AND $2 ORDER BY date;`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query fitness days: %w", err)
	}
	defer rows.Close()

	days := make([]Day, 0)
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, *day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fitness days rows: %w", err)
	}
	return days, nil
}

func (q *psqlQueries) DaySets(ctx context.Context, dayID int) (_ []SetDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.day.sets")
	span.SetAttributes(attribute.Int("day_id", dayID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := q.db.Query(
		ctx,
		`SELECT s.id, s.fitness_day_id, s.exercise_id, s.set_type, s.weight, s.reps, s.unit_id, s.remark,
				s.created_at, s.created_by, s.updated_at, s.updated_by,
				e.name, u.name
			FROM fitness_set s
				JOIN exercise e ON e.id = s.exercise_id
				JOIN unit u ON u.id = s.unit_id
			WHERE s.fitness_day_id = $1
			ORDER BY s.id;`,
		dayID,
	)
	if err != nil {
		return nil, fmt.Errorf("query day sets: %w", err)
	}
	defer rows.Close()

	sets := make([]SetDetail, 0)
	for rows.Next() {
		var sd SetDetail
		var setType string
		if err := rows.Scan(
			&sd.ID, &sd.DayID, &sd.ExerciseID, &setType, &sd.Weight, &sd.Reps, &sd.UnitID, &sd.Remark,
			&sd.CreatedAt, &sd.CreatedBy, &sd.UpdatedAt, &sd.UpdatedBy,
			&sd.ExerciseName, &sd.UnitName,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if sd.SetType, err = ParseSetType(setType); err != nil {
			return nil, fmt.Errorf("set %d: %w", sd.ID, err)
		}
		sets = append(sets, sd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("day sets rows: %w", err)
	}
	return sets, nil
}

func (q *psqlQueries) CountDaySets(ctx context.Context, dayID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.day.count_sets")
	span.SetAttributes(attribute.Int("day_id", dayID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var count int
	if err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM fitness_set WHERE fitness_day_id = $1;`, dayID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count day sets: %w", err)
	}
	return count, nil
}

func (q *psqlQueries) InsertSet(ctx context.Context, set *Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.set.insert")
	span.SetAttributes(attribute.Int("day_id", set.DayID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = q.db.QueryRow(
		ctx,
		`INSERT INTO fitness_set
				(fitness_day_id, exercise_id, set_type, weight, reps, unit_id, remark,
				created_at, created_by, updated_at, updated_by)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id;`,
		set.DayID, set.ExerciseID, string(set.SetType), set.Weight, set.Reps, set.UnitID, set.Remark,
		set.CreatedAt, set.CreatedBy, set.UpdatedAt, set.UpdatedBy,
	).Scan(&set.ID)
	if pkg.IsForeignKeyViolationError(err) {
		return fmt.Errorf("%w: %s", ErrReferenceViolation, err)
	}
	if err != nil {
		return fmt.Errorf("insert fitness set: %w", err)
	}
	return nil
}

func (q *psqlQueries) SetByID(ctx context.Context, id int) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.set.by_id")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return scanSet(q.db.QueryRow(ctx, setSelect+` WHERE id = $1;`, id))
}

func (q *psqlQueries) SetByIDForUpdate(ctx context.Context, id int) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.set.lock")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return scanSet(q.db.QueryRow(ctx, setSelect+` WHERE id = $1 FOR UPDATE;`, id))
}

func (q *psqlQueries) UpdateSet(ctx context.Context, set *Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.set.update")
	span.SetAttributes(attribute.Int("id", set.ID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := q.db.Exec(
		ctx,
		`UPDATE fitness_set SET exercise_id = $1, set_type = $2, weight = $3, reps = $4, unit_id = $5, remark = $6,
				updated_at = $7, updated_by = $8
			WHERE id = $9;`,
		set.ExerciseID, string(set.SetType), set.Weight, set.Reps, set.UnitID, set.Remark,
		set.UpdatedAt, set.UpdatedBy, set.ID,
	)
	if pkg.IsForeignKeyViolationError(err) {
		return fmt.Errorf("%w: %s", ErrReferenceViolation, err)
	}
	if err != nil {
		return fmt.Errorf("update fitness set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (q *psqlQueries) DeleteSet(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.set.delete")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := q.db.Exec(ctx, `DELETE FROM fitness_set WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete fitness set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (q *psqlQueries) LogEntries(ctx context.Context, params LogParams) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.logs")
	span.SetAttributes(attribute.String("exercise_name", params.ExerciseName))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var exerciseName *string
	if name := strings.TrimSpace(params.ExerciseName); name != "" {
		escaped := escapeLike(name)
		exerciseName = &escaped
	}

	rows, err := q.db.Query(
		ctx,
		`SELECT s.id, s.fitness_day_id, s.exercise_id, s.set_type, s.weight, s.reps, s.unit_id, s.remark,
				s.created_at, s.created_by, s.updated_at, s.updated_by,
				e.name, u.name, d.date, d.timezone
			FROM fitness_set s
				JOIN fitness_day d ON d.id = s.fitness_day_id
				JOIN exercise e ON e.id = s.exercise_id
				JOIN unit u ON u.id = s.unit_id
			WHERE ($1::date IS NULL OR d.date >= $1)
				AND ($2::date IS NULL OR d.date <= $2)
				AND ($3::text IS NULL OR e.name ILIKE '%' || $3 || '%' ESCAPE '\')
			ORDER BY d.date DESC, s.id DESC;`,
		params.From, params.To, exerciseName,
	)
	if err != nil {
		return nil, fmt.Errorf("query fitness logs: %w", err)
	}
	defer rows.Close()

	entries := make([]LogEntry, 0)
	for rows.Next() {
		var e LogEntry
		var setType string
		if err := rows.Scan(
			&e.ID, &e.DayID, &e.ExerciseID, &setType, &e.Weight, &e.Reps, &e.UnitID, &e.Remark,
			&e.CreatedAt, &e.CreatedBy, &e.UpdatedAt, &e.UpdatedBy,
			&e.ExerciseName, &e.UnitName, &e.DayDate, &e.DayTimezone,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if e.SetType, err = ParseSetType(setType); err != nil {
			return nil, fmt.Errorf("set %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fitness logs rows: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(entries)))
	return entries, nil
}

func scanDay(row pgx.Row) (*Day, error) {
	var day Day
	var muscles []string
	if err := row.Scan(
		&day.ID, &day.Date, &day.Timezone, &muscles, &day.StartTime, &day.EndTime,
		&day.CreatedAt, &day.CreatedBy, &day.UpdatedAt, &day.UpdatedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDayNotFound
		}
		return nil, fmt.Errorf("scan fitness day: %w", err)
	}

	for _, m := range muscles {
		mg, err := masterdata.ParseMuscleGroup(m)
		if err != nil {
			return nil, fmt.Errorf("fitness day %d: %w", day.ID, err)
		}
		day.PrimaryMuscles = append(day.PrimaryMuscles, mg)
	}
	day.StartTime = day.StartTime.UTC()
	if day.EndTime != nil {
		endTime := day.EndTime.UTC()
		day.EndTime = &endTime
	}
	return &day, nil
}

func scanSet(row pgx.Row) (*Set, error) {
	var set Set
	var setType string
	if err := row.Scan(
		&set.ID, &set.DayID, &set.ExerciseID, &setType, &set.Weight, &set.Reps, &set.UnitID, &set.Remark,
		&set.CreatedAt, &set.CreatedBy, &set.UpdatedAt, &set.UpdatedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSetNotFound
		}
		return nil, fmt.Errorf("scan fitness set: %w", err)
	}

	st, err := ParseSetType(setType)
	if err != nil {
		return nil, fmt.Errorf("fitness set %d: %w", set.ID, err)
	}
	set.SetType = st
	return &set, nil
}

func muscleGroupsArg(muscles []masterdata.MuscleGroup) []string {
	if len(muscles) == 0 {
		return nil
	}
	values := make([]string, 0, len(muscles))
	for _, mg := range muscles {
		values = append(values, string(mg))
	}
	return values
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
