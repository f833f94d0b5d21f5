package fitness

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/2beens/fitnesslog/internal/masterdata"
)

// TestStore is an in-memory Store used by tests and local tooling.
// Units of work are serialized and a failed one restores the previous state.
type TestStore struct {
	mu   sync.Mutex
	data *testStoreData
}

type testStoreData struct {
	days      map[int]Day
	sets      map[int]Set
	exercises map[int]masterdata.Exercise
	units     map[int]masterdata.Unit
	nextDayID int
	nextSetID int
	nextRefID int
}

func NewTestStore() *TestStore {
	return &TestStore{
		data: &testStoreData{
			days:      make(map[int]Day),
			sets:      make(map[int]Set),
			exercises: make(map[int]masterdata.Exercise),
			units:     make(map[int]masterdata.Unit),
			nextDayID: 1,
			nextSetID: 1,
			nextRefID: 1,
		},
	}
}

func (d *testStoreData) clone() *testStoreData {
	c := *d
	c.days = maps.Clone(d.days)
	c.sets = maps.Clone(d.sets)
	c.exercises = maps.Clone(d.exercises)
	c.units = maps.Clone(d.units)
	return &c
}

// AddExercise seeds an exercise and returns its id.
func (s *TestStore) AddExercise(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.data.nextRefID
	s.data.nextRefID++
	s.data.exercises[id] = masterdata.Exercise{ID: id, Name: name}
	return id
}

// AddUnit seeds a unit and returns its id.
func (s *TestStore) AddUnit(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.data.nextRefID
	s.data.nextRefID++
	s.data.units[id] = masterdata.Unit{ID: id, Name: name}
	return id
}

func (s *TestStore) DaysCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.days)
}

func (s *TestStore) SetsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.sets)
}

func (s *TestStore) InTx(_ context.Context, fn func(q Queries) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(&testQueries{data: s.data}); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *TestStore) ReadTx(ctx context.Context, fn func(q Queries) error) error {
	return s.InTx(ctx, fn)
}

type testQueries struct {
	data *testStoreData
}

func (q *testQueries) LockDate(context.Context, time.Time) error {
	return nil
}

func (q *testQueries) DayByDate(_ context.Context, date time.Time) (*Day, error) {
	for _, day := range q.data.days {
		if day.Date.Equal(date) {
			return &day, nil
		}
	}
	return nil, ErrDayNotFound
}

func (q *testQueries) DayByID(_ context.Context, id int) (*Day, error) {
	day, ok := q.data.days[id]
	if !ok {
		return nil, ErrDayNotFound
	}
	return &day, nil
}

func (q *testQueries) LockDay(ctx context.Context, id int) (*Day, error) {
	return q.DayByID(ctx, id)
}

func (q *testQueries) InsertDay(_ context.Context, day *Day) error {
	for _, existing := range q.data.days {
		if existing.Date.Equal(day.Date) {
			return fmt.Errorf("insert fitness day: date %s already taken", dateString(day.Date))
		}
	}
	day.ID = q.data.nextDayID
	q.data.nextDayID++
	q.data.days[day.ID] = *day
	return nil
}

func (q *testQueries) UpdateDay(_ context.Context, day *Day) error {
	if _, ok := q.data.days[day.ID]; !ok {
		return ErrDayNotFound
	}
	q.data.days[day.ID] = *day
	return nil
}

func (q *testQueries) DeleteDay(_ context.Context, id int) error {
	if _, ok := q.data.days[id]; !ok {
		return ErrDayNotFound
	}
	for setID, set := range q.data.sets {
		if set.DayID == id {
			delete(q.data.sets, setID)
		}
	}
	delete(q.data.days, id)
	return nil
}

func (q *testQueries) DaysBetween(_ context.Context, from, to time.Time) ([]Day, error) {
	days := make([]Day, 0)
	for _, day := range q.data.days {
		if !day.Date.Before(from) && !day.Date.After(to) {
			days = append(days, day)
		}
	}
	slices.SortFunc(days, func(a, b Day) int {
		return a.Date.Compare(b.Date)
	})
	return days, nil
}

func (q *testQueries) DaySets(_ context.Context, dayID int) ([]SetDetail, error) {
	sets := make([]SetDetail, 0)
	for _, set := range q.sortedSets() {
		if set.DayID == dayID {
			sets = append(sets, q.detail(set))
		}
	}
	return sets, nil
}

func (q *testQueries) CountDaySets(_ context.Context, dayID int) (int, error) {
	count := 0
	for _, set := range q.data.sets {
		if set.DayID == dayID {
			count++
		}
	}
	return count, nil
}

func (q *testQueries) InsertSet(_ context.Context, set *Set) error {
	if err := q.checkRefs(set, true); err != nil {
		return err
	}
	set.ID = q.data.nextSetID
	q.data.nextSetID++
	q.data.sets[set.ID] = *set
	return nil
}

func (q *testQueries) SetByID(_ context.Context, id int) (*Set, error) {
	set, ok := q.data.sets[id]
	if !ok {
		return nil, ErrSetNotFound
	}
	return &set, nil
}

func (q *testQueries) SetByIDForUpdate(ctx context.Context, id int) (*Set, error) {
	return q.SetByID(ctx, id)
}

func (q *testQueries) UpdateSet(_ context.Context, set *Set) error {
	if _, ok := q.data.sets[set.ID]; !ok {
		return ErrSetNotFound
	}
	if err := q.checkRefs(set, false); err != nil {
		return err
	}
	q.data.sets[set.ID] = *set
	return nil
}

func (q *testQueries) DeleteSet(_ context.Context, id int) error {
	if _, ok := q.data.sets[id]; !ok {
		return ErrSetNotFound
	}
	delete(q.data.sets, id)
	return nil
}

func (q *testQueries) LogEntries(_ context.Context, params LogParams) ([]LogEntry, error) {
	nameFilter := strings.ToLower(strings.TrimSpace(params.ExerciseName))

	entries := make([]LogEntry, 0)
	for _, set := range q.sortedSets() {
		day := q.data.days[set.DayID]
		if params.From != nil && day.Date.Before(*params.From) {
			continue
		}
		if params.To != nil && day.Date.After(*params.To) {
			continue
		}
		detail := q.detail(set)
		if nameFilter != "" && !strings.Contains(strings.ToLower(detail.ExerciseName), nameFilter) {
			continue
		}
		entries = append(entries, LogEntry{
			SetDetail:   detail,
			DayDate:     day.Date,
			DayTimezone: day.Timezone,
		})
	}

	slices.SortStableFunc(entries, func(a, b LogEntry) int {
		if c := b.DayDate.Compare(a.DayDate); c != 0 {
			return c
		}
		return b.ID - a.ID
	})
	return entries, nil
}

func (q *testQueries) sortedSets() []Set {
	sets := slices.Collect(maps.Values(q.data.sets))
	slices.SortFunc(sets, func(a, b Set) int {
		return a.ID - b.ID
	})
	return sets
}

func (q *testQueries) detail(set Set) SetDetail {
	return SetDetail{
		Set:          set,
		ExerciseName: q.data.exercises[set.ExerciseID].Name,
		UnitName:     q.data.units[set.UnitID].Name,
	}
}

func (q *testQueries) checkRefs(set *Set, checkDay bool) error {
	if _, ok := q.data.days[set.DayID]; checkDay && !ok {
		return fmt.Errorf("%w: fitness day %d", ErrReferenceViolation, set.DayID)
	}
	if _, ok := q.data.exercises[set.ExerciseID]; !ok {
		return fmt.Errorf("%w: exercise %d", ErrReferenceViolation, set.ExerciseID)
	}
	if _, ok := q.data.units[set.UnitID]; !ok {
		return fmt.Errorf("%w: unit %d", ErrReferenceViolation, set.UnitID)
	}
	return nil
}
