// Package timezone resolves IANA timezone names and turns instants into local calendar dates.
package timezone

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidTimezone   = errors.New("invalid timezone")
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Resolve maps an IANA timezone name to a location.
// "UTC" is accepted in any letter case. Blank names and "Local" are rejected.
func Resolve(id string) (*time.Location, error) {
	name := strings.TrimSpace(id)
	if name == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidTimezone)
	}
	if strings.EqualFold(name, "UTC") {
		return time.UTC, nil
	}
	if name == "Local" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, id)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, id)
	}
	return loc, nil
}

// Validate reports whether the timezone name can be resolved.
func Validate(id string) error {
	_, err := Resolve(id)
	return err
}

type Resolver struct {
	Now func() time.Time
}

func NewResolver(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{
		Now: now,
	}
}

// NowUTC returns the current instant in UTC.
func (r *Resolver) NowUTC() time.Time {
	return r.Now().UTC()
}

// LocalToday returns today's calendar date in the given timezone,
// as a time at midnight UTC.
func (r *Resolver) LocalToday(id string) (time.Time, error) {
	loc, err := Resolve(id)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(r.Now().In(loc)), nil
}

// DateOf drops the clock part of t, keeping t's calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, value)
	}
	return date, nil
}
