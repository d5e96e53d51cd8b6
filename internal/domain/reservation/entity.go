package reservation

import (
	"time"
)

// Reservation is one booked slot. The date is the venue-local calendar
// day; start and end are the UTC instants actually persisted.
type Reservation struct {
	id       int64
	username string
	fieldID  int64
	slot     TimeSlot
	startUTC time.Time
	endUTC   time.Time
}

// New validates the requested slot against the clock and freezes its
// UTC range. Overlap and per-day caps are enforced at the store, inside
// the insert transaction.
func New(username string, fieldID int64, slot TimeSlot, now time.Time) (*Reservation, error) {
	if err := slot.ValidateAgainst(now); err != nil {
		return nil, err
	}

	start, end := slot.UTCRange()
	return &Reservation{
		username: username,
		fieldID:  fieldID,
		slot:     slot,
		startUTC: start,
		endUTC:   end,
	}, nil
}

func Reconstruct(id int64, username string, fieldID int64, slot TimeSlot, startUTC, endUTC time.Time) *Reservation {
	return &Reservation{
		id:       id,
		username: username,
		fieldID:  fieldID,
		slot:     slot,
		startUTC: startUTC,
		endUTC:   endUTC,
	}
}

func (r *Reservation) ID() int64           { return r.id }
func (r *Reservation) Username() string    { return r.username }
func (r *Reservation) FieldID() int64      { return r.fieldID }
func (r *Reservation) Slot() TimeSlot      { return r.slot }
func (r *Reservation) StartUTC() time.Time { return r.startUTC }
func (r *Reservation) EndUTC() time.Time   { return r.endUTC }

// DateString is the stored venue-local date, "YYYY-MM-DD".
func (r *Reservation) DateString() string {
	return r.slot.Date().Format(DateLayout)
}

// CanBeCanceledBy allows the holder or the field owner to cancel.
func (r *Reservation) CanBeCanceledBy(username, fieldOwner string) bool {
	return r.username == username || fieldOwner == username
}
