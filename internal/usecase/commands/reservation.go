package commands

import (
	"context"

	"sportfields/internal/domain/reservation"
	"sportfields/internal/infra"
	"sportfields/internal/pkg/clock"
	"sportfields/internal/pkg/errs"
	"sportfields/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Per-day booking caps, enforced inside the insert transaction.
const (
	MaxReservationsPerDay      = 3
	MaxReservationsPerFieldDay = 1
)

var (
	ErrFieldNotBookable   = errs.New("field is not bookable")
	ErrOutsideSchedule    = errs.New("slot is outside the field's open hours")
	ErrSlotTaken          = errs.New("slot overlaps an existing reservation")
	ErrDailyLimitReached  = errs.New("daily reservation limit reached")
	ErrFieldAlreadyBooked = errs.New("field already booked by this user that day")
	ErrReservationMissing = errs.New("reservation not found")
	ErrCancelNotAllowed   = errs.New("not allowed to cancel this reservation")
)

type ReservationRepository interface {
	// LockField serializes bookings per field for the lifetime of the
	// surrounding transaction.
	LockField(ctx context.Context, tx pgx.Tx, fieldID int64) error
	HasOverlap(ctx context.Context, tx pgx.Tx, fieldID int64, date string, startHour, endHour int) (bool, error)
	CountByUserOnDate(ctx context.Context, tx pgx.Tx, username, date string) (int, error)
	ExistsForUserFieldDate(ctx context.Context, tx pgx.Tx, username string, fieldID int64, date string) (bool, error)
	Create(ctx context.Context, tx pgx.Tx, res *reservation.Reservation) (int64, error)
	Find(ctx context.Context, id int64) (*reservation.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

type CreateReservationInput struct {
	FieldID int64
	Date    string // YYYY-MM-DD, venue-local
	Start   string // HH:MM
	End     string // HH:MM, or "24:00" for a slot ending at midnight
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, username string, input CreateReservationInput) (int64, error)
	// CancelReservation deletes the booking. The holder and the owner
	// of the reserved field may cancel.
	CancelReservation(ctx context.Context, username string, reservationID int64) error
}

type reservationCommandsImpl struct {
	reservations ReservationRepository
	fields       FieldRepository
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewReservationCommands(
	reservations ReservationRepository,
	fields FieldRepository,
	db *pgxpool.Pool,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservations: reservations,
		fields:       fields,
		db:           db,
		clock:        clk,
	}
}

func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, username string, input CreateReservationInput) (int64, error) {
	f, err := c.fields.Find(ctx, input.FieldID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Mark(err, ErrFieldMissing)
		}
		return 0, err
	}
	if !f.IsConfirmed() {
		return 0, ErrFieldNotBookable
	}

	slot, err := reservation.NewTimeSlot(input.Date, input.Start, input.End)
	if err != nil {
		return 0, err
	}

	for h := slot.StartHour(); h < slot.EndHour(); h++ {
		if !f.Schedule().IsOpen(h) {
			return 0, ErrOutsideSchedule
		}
	}

	res, err := reservation.New(username, input.FieldID, slot, c.clock.Now())
	if err != nil {
		return 0, err
	}

	// Overlap and cap checks run after taking a per-field advisory
	// lock, so two racing requests for the same field serialize and at
	// most one insert survives.
	return shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (int64, error) {
		if err := c.reservations.LockField(ctx, tx, input.FieldID); err != nil {
			return 0, err
		}

		taken, err := c.reservations.HasOverlap(ctx, tx, input.FieldID, res.DateString(), slot.StartHour(), slot.EndHour())
		if err != nil {
			return 0, err
		}
		if taken {
			return 0, ErrSlotTaken
		}

		count, err := c.reservations.CountByUserOnDate(ctx, tx, username, res.DateString())
		if err != nil {
			return 0, err
		}
		if count >= MaxReservationsPerDay {
			return 0, ErrDailyLimitReached
		}

		booked, err := c.reservations.ExistsForUserFieldDate(ctx, tx, username, input.FieldID, res.DateString())
		if err != nil {
			return 0, err
		}
		if booked {
			return 0, ErrFieldAlreadyBooked
		}

		return c.reservations.Create(ctx, tx, res)
	})
}

func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, username string, reservationID int64) error {
	res, err := c.reservations.Find(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrReservationMissing)
		}
		return err
	}

	f, err := c.fields.Find(ctx, res.FieldID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrFieldMissing)
		}
		return err
	}

	if !res.CanBeCanceledBy(username, f.OwnerUsername()) {
		return ErrCancelNotAllowed
	}
	return c.reservations.Delete(ctx, res.ID())
}
