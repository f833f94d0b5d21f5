package fitness

import (
	"context"
	"time"
)

// Queries are the storage operations available within a unit of work.
type Queries interface {
	// LockDate serializes units of work touching the same calendar date
	// until the enclosing unit of work ends.
	LockDate(ctx context.Context, date time.Time) error

	DayByDate(ctx context.Context, date time.Time) (*Day, error)
	DayByID(ctx context.Context, id int) (*Day, error)
	LockDay(ctx context.Context, id int) (*Day, error)
	InsertDay(ctx context.Context, day *Day) error
	UpdateDay(ctx context.Context, day *Day) error
	// DeleteDay removes the day together with all its sets.
	DeleteDay(ctx context.Context, id int) error
	// DaysBetween returns days in the inclusive date range, oldest first.
	DaysBetween(ctx context.Context, from, to time.Time) ([]Day, error)
	// DaySets returns the day's sets in insertion order.
	DaySets(ctx context.Context, dayID int) ([]SetDetail, error)
	CountDaySets(ctx context.Context, dayID int) (int, error)

	InsertSet(ctx context.Context, set *Set) error
	SetByID(ctx context.Context, id int) (*Set, error)
	SetByIDForUpdate(ctx context.Context, id int) (*Set, error)
	UpdateSet(ctx context.Context, set *Set) error
	DeleteSet(ctx context.Context, id int) error

	// LogEntries returns matching sets, newest day first, then newest set first.
	LogEntries(ctx context.Context, params LogParams) ([]LogEntry, error)
}

type Store interface {
	// InTx runs fn in a single unit of work, committed only if fn returns nil.
	InTx(ctx context.Context, fn func(q Queries) error) error
	// ReadTx runs fn in a read-only unit of work.
	ReadTx(ctx context.Context, fn func(q Queries) error) error
}
