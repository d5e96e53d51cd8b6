package availability

import (
	"strconv"
	"strings"

	"sportfields/internal/domain/field"
	"sportfields/internal/pkg/errs"
)

// SlotState classifies one hour of a field's day.
type SlotState string

const (
	StateClosed    SlotState = "closed"
	StateAvailable SlotState = "available"
	StateReserved  SlotState = "reserved"
)

// HoursPerDay is the length of every occupancy vector.
const HoursPerDay = 24

// Vector is the hour-indexed occupancy of one field on one date.
// It is derived per request from the schedule and the reservation rows
// and is never cached: reservation state can change between calls.
type Vector [HoursPerDay]SlotState

// Interval is a booked [StartHour, EndHour) range, hour-aligned.
type Interval struct {
	StartHour int
	EndHour   int
}

// Contains reports whether hour h falls inside the interval.
func (i Interval) Contains(h int) bool {
	return h >= i.StartHour && h < i.EndHour
}

// Build derives the occupancy vector for a single field and date.
// Hours outside the schedule are closed regardless of reservations;
// open hours covered by any reservation are reserved.
func Build(schedule field.Schedule, reserved []Interval) Vector {
	var v Vector
	for h := 0; h < HoursPerDay; h++ {
		switch {
		case !schedule.IsOpen(h):
			v[h] = StateClosed
		case anyContains(reserved, h):
			v[h] = StateReserved
		default:
			v[h] = StateAvailable
		}
	}
	return v
}

func anyContains(reserved []Interval, h int) bool {
	for _, r := range reserved {
		if r.Contains(h) {
			return true
		}
	}
	return false
}

var ErrInvalidTime = errs.New("invalid time of day")

// HourOf truncates a stored "HH:MM:SS" (or "HH:MM") time string to its
// integer hour. Reservations are hour-aligned, so truncation is exact.
// Hour 24 is accepted: a slot ending at midnight is stored with an
// exclusive end of "24:00:00".
func HourOf(t string) (int, error) {
	hh, _, _ := strings.Cut(strings.TrimSpace(t), ":")
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 24 {
		return 0, ErrInvalidTime
	}
	return hour, nil
}
