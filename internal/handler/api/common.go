package api

import (
	"time"

	"sportfields/internal/domain/reservation"
	"sportfields/internal/pkg/errs"
)

var errForbidden = errs.New("forbidden")

// todayVenueDate is the current calendar date at the venue, the lower
// bound for "future" reservations in search responses.
func todayVenueDate() string {
	return time.Now().In(reservation.Location()).Format(reservation.DateLayout)
}
