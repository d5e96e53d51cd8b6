package queries

import (
	"context"

	"sportfields/internal/domain/availability"
	"sportfields/internal/domain/field"
)

type AvailabilityQueries interface {
	// Grid derives the 24-hour occupancy vector for one field and one
	// venue-local date.
	Grid(ctx context.Context, fieldID int64, date string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	fields       FieldQueries
	reservations ReservationReadStore
}

func NewAvailabilityQueries(fields FieldQueries, reservations ReservationReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		fields:       fields,
		reservations: reservations,
	}
}

func (q *availabilityQueriesImpl) Grid(ctx context.Context, fieldID int64, date string) (*AvailabilityView, error) {
	fieldView, err := q.fields.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	intervals, err := q.reservations.FindIntervals(ctx, fieldID, date)
	if err != nil {
		return nil, err
	}

	// A schedule that fails to parse yields the zero value, which keeps
	// every hour closed rather than guessing at an open window.
	schedule, _ := field.NewSchedule(fieldView.Schedule)

	reserved := make([]availability.Interval, 0, len(intervals))
	for _, iv := range intervals {
		reserved = append(reserved, availability.Interval{
			StartHour: iv.StartHour,
			EndHour:   iv.EndHour,
		})
	}

	return &AvailabilityView{
		FieldID: fieldID,
		Date:    date,
		Hours:   availability.Build(schedule, reserved),
	}, nil
}
