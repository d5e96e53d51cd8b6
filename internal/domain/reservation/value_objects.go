package reservation

import (
	"fmt"
	"time"

	"sportfields/internal/domain/booking"
	"sportfields/internal/pkg/errs"
)

var (
	ErrInvalidDate     = errs.New("invalid reservation date")
	ErrInvalidTime     = errs.New("invalid reservation time")
	ErrInvalidInterval = errs.New("end time must be after start time")
	ErrPastDate        = errs.New("cannot reserve a day in the past")
	ErrPastStart       = errs.New("cannot reserve before the current hour today")
	ErrTooLong         = errs.New("reservation cannot exceed three hours")
)

// VenueZone is the single named timezone used for both the write path
// and display. Wall-clock inputs are local to it and stored in UTC.
const VenueZone = "Europe/Bucharest"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
	wireLayout = "15:04"
)

var venueLocation = mustLoadZone()

func mustLoadZone() *time.Location {
	loc, err := time.LoadLocation(VenueZone)
	if err != nil {
		panic("load venue timezone: " + err.Error())
	}
	return loc
}

func Location() *time.Location {
	return venueLocation
}

// TimeSlot is a requested booking window in venue wall-clock time:
// a calendar date plus whole start and end hours, end exclusive.
type TimeSlot struct {
	date      time.Time // midnight, venue zone
	startHour int
	endHour   int
}

// NewTimeSlot parses the wire form: date "YYYY-MM-DD", times "HH:MM".
func NewTimeSlot(date, start, end string) (TimeSlot, error) {
	day, err := time.ParseInLocation(DateLayout, date, venueLocation)
	if err != nil {
		return TimeSlot{}, errs.Mark(err, ErrInvalidDate)
	}

	startAt, err := time.ParseInLocation(wireLayout, start, venueLocation)
	if err != nil {
		return TimeSlot{}, errs.Mark(err, ErrInvalidTime)
	}

	endHour := 24
	if end != "24:00" {
		endAt, err := time.ParseInLocation(wireLayout, end, venueLocation)
		if err != nil {
			return TimeSlot{}, errs.Mark(err, ErrInvalidTime)
		}
		endHour = endAt.Hour()
	}

	slot := TimeSlot{
		date:      day,
		startHour: startAt.Hour(),
		endHour:   endHour,
	}
	if slot.endHour <= slot.startHour {
		return TimeSlot{}, ErrInvalidInterval
	}
	if slot.endHour-slot.startHour > booking.MaxSlotHours {
		return TimeSlot{}, ErrTooLong
	}
	return slot, nil
}

// FromSlot lifts a committed selector slot onto a calendar date.
func FromSlot(date string, slot booking.Slot) (TimeSlot, error) {
	return NewTimeSlot(
		date,
		fmt.Sprintf("%02d:00", slot.StartHour),
		fmt.Sprintf("%02d:00", slot.EndHour),
	)
}

func (ts TimeSlot) Date() time.Time { return ts.date }
func (ts TimeSlot) StartHour() int  { return ts.startHour }
func (ts TimeSlot) EndHour() int    { return ts.endHour }
func (ts TimeSlot) Hours() int      { return ts.endHour - ts.startHour }

// Start is the slot's opening instant in the venue zone.
func (ts TimeSlot) Start() time.Time {
	return ts.date.Add(time.Duration(ts.startHour) * time.Hour)
}

// ValidateAgainst applies the booking-time rules relative to now:
// no dates strictly before today (venue-local midnight), and no
// same-day start at or before the current wall clock.
func (ts TimeSlot) ValidateAgainst(now time.Time) error {
	localNow := now.In(venueLocation)
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, venueLocation)

	if ts.date.Before(today) {
		return ErrPastDate
	}
	if ts.date.Equal(today) && !ts.Start().After(localNow) {
		return ErrPastStart
	}
	return nil
}

// UTCRange converts the wall-clock slot to the UTC instants persisted
// in the store. The named-zone conversion is DST-correct on both the
// write and display paths.
func (ts TimeSlot) UTCRange() (time.Time, time.Time) {
	start := time.Date(ts.date.Year(), ts.date.Month(), ts.date.Day(), ts.startHour, 0, 0, 0, venueLocation)
	end := time.Date(ts.date.Year(), ts.date.Month(), ts.date.Day(), ts.endHour, 0, 0, 0, venueLocation)
	return start.UTC(), end.UTC()
}
