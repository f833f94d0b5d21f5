package fitness

import (
	"time"

	"github.com/2beens/fitnesslog/internal/masterdata"
)

type NamedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type DetailSetView struct {
	ID      int      `json:"id"`
	SetType SetType  `json:"set_type"`
	Weight  float64  `json:"weight"`
	Reps    int      `json:"reps"`
	Unit    NamedRef `json:"unit"`
	Remark  *string  `json:"remark"`
}

type ExerciseGroupView struct {
	Exercise NamedRef        `json:"exercise"`
	Sets     []DetailSetView `json:"sets"`
}

// DayDetailView is the day document served to clients. ID is nil for a
// placeholder of a day that does not exist yet.
type DayDetailView struct {
	ID             *int                     `json:"id"`
	Date           string                   `json:"date"`
	Timezone       string                   `json:"timezone"`
	PrimaryMuscles []masterdata.MuscleGroup `json:"primary_muscles"`
	StartTime      string                   `json:"start_time"`
	EndTime        *string                  `json:"end_time"`
	Exercises      []ExerciseGroupView      `json:"exercises"`
}

// View groups the sets by exercise, in order of first appearance.
func (d DayDetail) View() DayDetailView {
	id := d.Day.ID
	view := DayDetailView{
		ID:             &id,
		Date:           dateString(d.Day.Date),
		Timezone:       d.Day.Timezone,
		PrimaryMuscles: d.Day.PrimaryMuscles,
		StartTime:      formatInstant(d.Day.StartTime),
		Exercises:      make([]ExerciseGroupView, 0),
	}
	if view.PrimaryMuscles == nil {
		view.PrimaryMuscles = make([]masterdata.MuscleGroup, 0)
	}
	if d.Day.EndTime != nil {
		endTime := formatInstant(*d.Day.EndTime)
		view.EndTime = &endTime
	}

	groupIdx := make(map[int]int)
	for _, s := range d.Sets {
		idx, ok := groupIdx[s.ExerciseID]
		if !ok {
			idx = len(view.Exercises)
			groupIdx[s.ExerciseID] = idx
			view.Exercises = append(view.Exercises, ExerciseGroupView{
				Exercise: NamedRef{ID: s.ExerciseID, Name: s.ExerciseName},
				Sets:     make([]DetailSetView, 0),
			})
		}
		view.Exercises[idx].Sets = append(view.Exercises[idx].Sets, DetailSetView{
			ID:      s.ID,
			SetType: s.SetType,
			Weight:  s.Weight,
			Reps:    s.Reps,
			Unit:    NamedRef{ID: s.UnitID, Name: s.UnitName},
			Remark:  s.Remark,
		})
	}

	return view
}

// PlaceholderDetail is served when no day exists for the requested date yet.
// Nothing is persisted.
func PlaceholderDetail(tz string, date, now time.Time) DayDetailView {
	return DayDetailView{
		ID:             nil,
		Date:           dateString(date),
		Timezone:       tz,
		PrimaryMuscles: make([]masterdata.MuscleGroup, 0),
		StartTime:      formatInstant(now),
		EndTime:        nil,
		Exercises:      make([]ExerciseGroupView, 0),
	}
}

type LogSetView struct {
	ID        int       `json:"id"`
	Exercise  string    `json:"exercise"`
	SetType   SetType   `json:"set_type"`
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	Unit      string    `json:"unit"`
	Remark    *string   `json:"remark"`
	CreatedAt time.Time `json:"created_at"`
}

type LogGroup struct {
	Date     string       `json:"date"`
	Timezone string       `json:"timezone"`
	Sets     []LogSetView `json:"sets"`
}

// groupLogEntries groups entries by day date, keeping the incoming order
// of both the groups and the sets within them.
func groupLogEntries(entries []LogEntry) []LogGroup {
	groups := make([]LogGroup, 0)
	groupIdx := make(map[string]int)
	for _, e := range entries {
		date := dateString(e.DayDate)
		idx, ok := groupIdx[date]
		if !ok {
			idx = len(groups)
			groupIdx[date] = idx
			groups = append(groups, LogGroup{
				Date:     date,
				Timezone: e.DayTimezone,
				Sets:     make([]LogSetView, 0),
			})
		}
		groups[idx].Sets = append(groups[idx].Sets, LogSetView{
			ID:        e.ID,
			Exercise:  e.ExerciseName,
			SetType:   e.SetType,
			Weight:    e.Weight,
			Reps:      e.Reps,
			Unit:      e.UnitName,
			Remark:    e.Remark,
			CreatedAt: e.CreatedAt,
		})
	}
	return groups
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
