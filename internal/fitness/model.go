// Package fitness keeps track of training days and the sets logged within them.
package fitness

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitnesslog/internal/masterdata"
	"github.com/2beens/fitnesslog/internal/timezone"
	"github.com/2beens/fitnesslog/pkg"
)

var (
	ErrDayNotFound        = errors.New("fitness day not found")
	ErrSetNotFound        = errors.New("fitness set not found")
	ErrReferenceViolation = errors.New("referenced record does not exist")
	ErrInvalidSetInput    = errors.New("invalid fitness set")
	ErrInvalidMonth       = errors.New("invalid month")
)

type Day struct {
	ID int `json:"id"`
	// Date is the local calendar date, at midnight UTC
	Date           time.Time                `json:"date"`
	Timezone       string                   `json:"timezone"`
	PrimaryMuscles []masterdata.MuscleGroup `json:"primary_muscles"`
	StartTime      time.Time                `json:"start_time"`
	EndTime        *time.Time               `json:"end_time"`
	pkg.Audit
}

type Set struct {
	ID         int     `json:"id"`
	DayID      int     `json:"fitness_day_id"`
	ExerciseID int     `json:"exercise_id"`
	SetType    SetType `json:"set_type"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	UnitID     int     `json:"unit_id"`
	Remark     *string `json:"remark"`
	pkg.Audit
}

// SetDetail is a set joined with the names of its exercise and unit.
type SetDetail struct {
	Set
	ExerciseName string
	UnitName     string
}

type DayDetail struct {
	Day  Day
	Sets []SetDetail
}

// LogEntry is a set as it appears in the training log.
type LogEntry struct {
	SetDetail
	DayDate     time.Time
	DayTimezone string
}

type CreateSetInput struct {
	// DayID nil (or 0) attaches the set to today's day, creating it if needed.
	DayID      *int     `json:"fitness_day_id"`
	ExerciseID int      `json:"exercise_id"`
	Weight     float64  `json:"weight"`
	Reps       *int     `json:"reps"`
	UnitID     int      `json:"unit_id"`
	SetType    *SetType `json:"set_type"`
	Remark     *string  `json:"remark"`
	// PrimaryMuscles is only used when today's day is resolved implicitly.
	PrimaryMuscles *[]masterdata.MuscleGroup `json:"primary_muscles"`
}

func (in CreateSetInput) validate() error {
	if in.ExerciseID <= 0 {
		return fmt.Errorf("%w: exercise_id is required", ErrInvalidSetInput)
	}
	if in.UnitID <= 0 {
		return fmt.Errorf("%w: unit_id is required", ErrInvalidSetInput)
	}
	if in.Reps != nil && *in.Reps <= 0 {
		return fmt.Errorf("%w: reps must be positive", ErrInvalidSetInput)
	}
	return nil
}

// UpdateSetInput fields left nil are not touched.
type UpdateSetInput struct {
	ExerciseID *int     `json:"exercise_id"`
	Weight     *float64 `json:"weight"`
	Reps       *int     `json:"reps"`
	UnitID     *int     `json:"unit_id"`
	SetType    *SetType `json:"set_type"`
	Remark     *string  `json:"remark"`
}

func (in UpdateSetInput) validate() error {
	if in.ExerciseID != nil && *in.ExerciseID <= 0 {
		return fmt.Errorf("%w: invalid exercise_id", ErrInvalidSetInput)
	}
	if in.UnitID != nil && *in.UnitID <= 0 {
		return fmt.Errorf("%w: invalid unit_id", ErrInvalidSetInput)
	}
	if in.Reps != nil && *in.Reps <= 0 {
		return fmt.Errorf("%w: reps must be positive", ErrInvalidSetInput)
	}
	return nil
}

func (in UpdateSetInput) apply(set *Set) {
	if in.ExerciseID != nil {
		set.ExerciseID = *in.ExerciseID
	}
	if in.Weight != nil {
		set.Weight = *in.Weight
	}
	if in.Reps != nil {
		set.Reps = *in.Reps
	}
	if in.UnitID != nil {
		set.UnitID = *in.UnitID
	}
	if in.SetType != nil {
		set.SetType = *in.SetType
	}
	if in.Remark != nil {
		remark := *in.Remark
		set.Remark = &remark
	}
}

type DeleteResult struct {
	Deleted    bool `json:"ok"`
	DayDeleted bool `json:"day_deleted"`
}

type LogParams struct {
	From         *time.Time
	To           *time.Time
	ExerciseName string
}

// NormalizeMuscleGroups drops blanks and duplicates, keeping first occurrences in order.
// Returns nil when nothing is left.
func NormalizeMuscleGroups(muscles []masterdata.MuscleGroup) []masterdata.MuscleGroup {
	var normalized []masterdata.MuscleGroup
	seen := make(map[masterdata.MuscleGroup]bool, len(muscles))
	for _, mg := range muscles {
		mg = masterdata.MuscleGroup(strings.TrimSpace(string(mg)))
		if mg == "" || seen[mg] {
			continue
		}
		seen[mg] = true
		normalized = append(normalized, mg)
	}
	return normalized
}

// ParseMuscleGroups parses comma separated muscle groups, e.g. "胸,胸,背".
func ParseMuscleGroups(value string) ([]masterdata.MuscleGroup, error) {
	var muscles []masterdata.MuscleGroup
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		mg, err := masterdata.ParseMuscleGroup(part)
		if err != nil {
			return nil, err
		}
		muscles = append(muscles, mg)
	}
	return NormalizeMuscleGroups(muscles), nil
}

func monthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to, nil
}

func dateString(date time.Time) string {
	return timezone.FormatDate(date)
}
