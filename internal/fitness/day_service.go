package fitness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitnesslog/internal/masterdata"
	"github.com/2beens/fitnesslog/internal/telemetry/metrics"
	"github.com/2beens/fitnesslog/internal/telemetry/tracing"
	"github.com/2beens/fitnesslog/internal/timezone"
	"github.com/2beens/fitnesslog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type DayService struct {
	store    Store
	resolver *timezone.Resolver
	metrics  *metrics.Manager
}

func NewDayService(store Store, resolver *timezone.Resolver, metricsManager *metrics.Manager) *DayService {
	return &DayService{
		store:    store,
		resolver: resolver,
		metrics:  metricsManager,
	}
}

func (s *DayService) LocalToday(tz string) (time.Time, error) {
	return s.resolver.LocalToday(tz)
}

func (s *DayService) NowUTC() time.Time {
	return s.resolver.NowUTC()
}

func (s *DayService) GetByDate(ctx context.Context, date time.Time) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.day.by_date")
	span.SetAttributes(attribute.String("date", dateString(date)))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var day *Day
	err = s.store.ReadTx(ctx, func(q Queries) error {
		day, err = q.DayByDate(ctx, timezone.DateOf(date))
		return err
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

// GetDetail returns the day with all its sets, ErrDayNotFound if there is no such day.
func (s *DayService) GetDetail(ctx context.Context, id int) (_ *DayDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.day.detail")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var detail *DayDetail
	err = s.store.ReadTx(ctx, func(q Queries) error {
		day, err := q.DayByID(ctx, id)
		if err != nil {
			return err
		}
		detail, err = loadDetail(ctx, q, day)
		return err
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// GetDetailByDate is GetDetail for the day logged on the given date.
func (s *DayService) GetDetailByDate(ctx context.Context, date time.Time) (_ *DayDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.day.detail_by_date")
	span.SetAttributes(attribute.String("date", dateString(date)))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var detail *DayDetail
	err = s.store.ReadTx(ctx, func(q Queries) error {
		day, err := q.DayByDate(ctx, timezone.DateOf(date))
		if err != nil {
			return err
		}
		detail, err = loadDetail(ctx, q, day)
		return err
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// GetOrCreateToday returns today's day in the given timezone, creating it when missing.
// A non-nil muscles overwrites the primary muscles of an existing day.
func (s *DayService) GetOrCreateToday(ctx context.Context, tz string, muscles *[]masterdata.MuscleGroup) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.day.get_or_create_today")
	span.SetAttributes(attribute.String("timezone", tz))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var day *Day
	var created bool
	err = s.store.InTx(ctx, func(q Queries) error {
		day, created, err = s.getOrCreateToday(ctx, q, tz, muscles)
		return err
	})
	if err != nil {
		return nil, err
	}

	if created {
		s.metrics.CounterDaysCreated.Inc()
		log.Debugf("fitness day %d created for %s", day.ID, dateString(day.Date))
	}
	return day, nil
}

// getOrCreateToday must run inside a unit of work, it holds the date lock until the unit ends.
func (s *DayService) getOrCreateToday(ctx context.Context, q Queries, tz string, muscles *[]masterdata.MuscleGroup) (*Day, bool, error) {
	today, err := s.resolver.LocalToday(tz)
	if err != nil {
		return nil, false, err
	}

	if err := q.LockDate(ctx, today); err != nil {
		return nil, false, err
	}

	day, err := q.DayByDate(ctx, today)
	switch {
	case err == nil:
		if muscles == nil {
			return day, false, nil
		}
		day.PrimaryMuscles = NormalizeMuscleGroups(*muscles)
		day.Touch(s.resolver.NowUTC())
		if err := q.UpdateDay(ctx, day); err != nil {
			return nil, false, err
		}
		return day, false, nil
	case errors.Is(err, ErrDayNotFound):
		// create below
	default:
		return nil, false, err
	}

	now := s.resolver.NowUTC()
	day = &Day{
		Date:      today,
		Timezone:  tz,
		StartTime: now,
		Audit:     pkg.NewAudit(now),
	}
	if muscles != nil {
		day.PrimaryMuscles = NormalizeMuscleGroups(*muscles)
	}
	if err := q.InsertDay(ctx, day); err != nil {
		return nil, false, err
	}
	return day, true, nil
}

// StartToday is GetOrCreateToday returning the full day document.
func (s *DayService) StartToday(ctx context.Context, tz string, muscles *[]masterdata.MuscleGroup) (_ *DayDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.day.start_today")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var detail *DayDetail
	var created bool
	err = s.store.InTx(ctx, func(q Queries) error {
		var day *Day
		day, created, err = s.getOrCreateToday(ctx, q, tz, muscles)
		if err != nil {
			return err
		}
		detail, err = loadDetail(ctx, q, day)
		return err
	})
	if err != nil {
		return nil, err
	}

	if created {
		s.metrics.CounterDaysCreated.Inc()
	}
	return detail, nil
}

// FinishToday closes today's day, ErrDayNotFound if none was started.
func (s *DayService) FinishToday(ctx context.Context, tz string) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.day.finish_today")
	span.SetAttributes(attribute.String("timezone", tz))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	today, err := s.resolver.LocalToday(tz)
	if err != nil {
		return nil, err
	}

	var day *Day
	err = s.store.InTx(ctx, func(q Queries) error {
		if err := q.LockDate(ctx, today); err != nil {
			return err
		}
		found, err := q.DayByDate(ctx, today)
		if err != nil {
			return err
		}
		day, err = s.finish(ctx, q, found.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (s *DayService) FinishByID(ctx context.Context, id int) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.day.finish")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var day *Day
	err = s.store.InTx(ctx, func(q Queries) error {
		day, err = s.finish(ctx, q, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (s *DayService) finish(ctx context.Context, q Queries, id int) (*Day, error) {
	day, err := q.LockDay(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.resolver.NowUTC()
	day.EndTime = &now
	day.Touch(now)
	if err := q.UpdateDay(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// ListByMonth returns the days of the given month, oldest first.
func (s *DayService) ListByMonth(ctx context.Context, year, month int) (_ []Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.day.list_by_month")
	span.SetAttributes(attribute.Int("year", year), attribute.Int("month", month))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	from, to, err := monthRange(year, month)
	if err != nil {
		return nil, err
	}

	var days []Day
	err = s.store.ReadTx(ctx, func(q Queries) error {
		days, err = q.DaysBetween(ctx, from, to)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list days of %d-%02d: %w", year, month, err)
	}
	return days, nil
}

// TrainingCalendar maps day of month to fitness day id for the given month.
func (s *DayService) TrainingCalendar(ctx context.Context, year, month int) (map[int]int, error) {
	days, err := s.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	calendar := make(map[int]int, len(days))
	for _, day := range days {
		calendar[day.Date.Day()] = day.ID
	}
	return calendar, nil
}

func loadDetail(ctx context.Context, q Queries, day *Day) (*DayDetail, error) {
	sets, err := q.DaySets(ctx, day.ID)
	if err != nil {
		return nil, err
	}
	return &DayDetail{
		Day:  *day,
		Sets: sets,
	}, nil
}
