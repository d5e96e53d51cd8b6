package queries

import (
	"time"

	"sportfields/internal/domain/availability"
)

// Read models (DTO for read side)

type UserView struct {
	ID              int64
	Username        string
	FirstName       string
	LastName        string
	Email           string
	Role            string
	FavouriteSports string
	CreatedAt       time.Time
}

type FieldView struct {
	ID            int64
	OwnerUsername string
	Sport         string
	Name          string
	Address       string
	City          string
	Sector        int
	PricePerHour  float64
	Schedule      string
	Status        string
	CreatedAt     time.Time
}

// ReservedInterval is the slimmed reservation row the hour grid needs:
// the venue-local date plus the hour-aligned occupied range.
type ReservedInterval struct {
	FieldID   int64
	Date      string // YYYY-MM-DD, venue-local
	StartHour int
	EndHour   int
}

// FieldWithReservations pairs a searchable field with its reserved
// intervals from today onward, so one search response carries
// everything the grid needs.
type FieldWithReservations struct {
	FieldView
	Reserved []ReservedInterval
}

type ReservationView struct {
	ID           int64
	Username     string
	FieldID      int64
	FieldName    string
	Sport        string
	Address      string
	PricePerHour float64
	Date         string // YYYY-MM-DD, venue-local
	StartHour    int
	EndHour      int
	CreatedAt    time.Time
}

// AvailabilityView is the derived hour grid for one field and date.
// Never cached: recomputed from the store on every request.
type AvailabilityView struct {
	FieldID int64
	Date    string
	Hours   availability.Vector
}
