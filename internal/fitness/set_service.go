package fitness

import (
	"context"
	"errors"

	"github.com/2beens/fitnesslog/internal/telemetry/metrics"
	"github.com/2beens/fitnesslog/internal/telemetry/tracing"
	"github.com/2beens/fitnesslog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type SetService struct {
	store   Store
	days    *DayService
	metrics *metrics.Manager
}

func NewSetService(store Store, days *DayService, metricsManager *metrics.Manager) *SetService {
	return &SetService{
		store:   store,
		days:    days,
		metrics: metricsManager,
	}
}

// Create logs a new set. Without a day id the set goes to today's day in tz, which is
// created on the fly; day creation and set insert share one unit of work.
// A day id pointing nowhere fails with ErrReferenceViolation.
func (s *SetService) Create(ctx context.Context, input CreateSetInput, tz string) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.set.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := input.validate(); err != nil {
		return nil, err
	}

	now := s.days.NowUTC()
	set := &Set{
		ExerciseID: input.ExerciseID,
		SetType:    SetTypeWorking,
		Weight:     input.Weight,
		Reps:       1,
		UnitID:     input.UnitID,
		Remark:     input.Remark,
		Audit:      pkg.NewAudit(now),
	}
	if input.SetType != nil {
		set.SetType = *input.SetType
	}
	if input.Reps != nil {
		set.Reps = *input.Reps
	}

	var dayCreated bool
	err = s.store.InTx(ctx, func(q Queries) error {
		if input.DayID != nil && *input.DayID > 0 {
			set.DayID = *input.DayID
		} else {
			day, created, err := s.days.getOrCreateToday(ctx, q, tz, input.PrimaryMuscles)
			if err != nil {
				return err
			}
			set.DayID = day.ID
			dayCreated = created
		}
		return q.InsertSet(ctx, set)
	})
	if err != nil {
		return nil, err
	}

	if dayCreated {
		s.metrics.CounterDaysCreated.Inc()
	}
	s.metrics.CounterSetsCreated.Inc()
	span.SetAttributes(attribute.Int("set_id", set.ID), attribute.Int("day_id", set.DayID))
	return set, nil
}

// Update applies the non-nil fields of input, ErrSetNotFound if there is no such set.
func (s *SetService) Update(ctx context.Context, id int, input UpdateSetInput) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.set.update")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := input.validate(); err != nil {
		return nil, err
	}

	var set *Set
	err = s.store.InTx(ctx, func(q Queries) error {
		set, err = q.SetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		input.apply(set)
		set.Touch(s.days.NowUTC())
		return q.UpdateSet(ctx, set)
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Delete removes the set. When it was the last set of its day, the day goes too.
// Deleting a missing set is not an error, the result just reports nothing was deleted.
func (s *SetService) Delete(ctx context.Context, id int) (_ DeleteResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitness.set.delete")
	span.SetAttributes(attribute.Int("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var result DeleteResult
	err = s.store.InTx(ctx, func(q Queries) error {
		set, err := q.SetByID(ctx, id)
		if err != nil {
			return err
		}
		day, err := q.DayByID(ctx, set.DayID)
		if err != nil {
			return err
		}

		// same lock order as set create: date first, then rows
		if err := q.LockDate(ctx, day.Date); err != nil {
			return err
		}
		if set, err = q.SetByIDForUpdate(ctx, id); err != nil {
			return err
		}
		if _, err := q.LockDay(ctx, set.DayID); err != nil {
			return err
		}

		count, err := q.CountDaySets(ctx, set.DayID)
		if err != nil {
			return err
		}

		if count <= 1 {
			if err := q.DeleteDay(ctx, set.DayID); err != nil {
				return err
			}
			result = DeleteResult{Deleted: true, DayDeleted: true}
			return nil
		}

		if err := q.DeleteSet(ctx, id); err != nil {
			return err
		}
		result = DeleteResult{Deleted: true}
		return nil
	})
	if errors.Is(err, ErrSetNotFound) {
		return DeleteResult{}, nil
	}
	if err != nil {
		return DeleteResult{}, err
	}

	s.metrics.CounterSetsDeleted.Inc()
	if result.DayDeleted {
		s.metrics.CounterDaysCascadeDeleted.Inc()
		log.Debugf("fitness set %d was the last one, its day is gone too", id)
	}
	return result, nil
}
