package writerepo

import (
	"context"
	"fmt"
	"time"

	"sportfields/internal/domain/reservation"
	"sportfields/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// LockField takes a transaction-scoped advisory lock keyed by field id.
// Concurrent bookings for the same field serialize on it, so the
// overlap and cap checks below always see the latest committed rows.
func (r *ReservationRepository) LockField(ctx context.Context, tx pgx.Tx, fieldID int64) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, fieldID)
	if err != nil {
		return infra.WrapRepoErr("failed to lock field", err)
	}
	return nil
}

func (r *ReservationRepository) HasOverlap(ctx context.Context, tx pgx.Tx, fieldID int64, date string, startHour, endHour int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE field_id = $1
			  AND date = $2
			  AND start_time < $4::time
			  AND end_time > $3::time
		)
	`

	var exists bool
	err := tx.QueryRow(ctx, query, fieldID, date, hourToTime(startHour), hourToTime(endHour)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlap", err)
	}
	return exists, nil
}

func (r *ReservationRepository) CountByUserOnDate(ctx context.Context, tx pgx.Tx, username, date string) (int, error) {
	var count int
	err := tx.QueryRow(ctx,
		`SELECT count(*) FROM reservations WHERE username = $1 AND date = $2`,
		username, date,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) ExistsForUserFieldDate(ctx context.Context, tx pgx.Tx, username string, fieldID int64, date string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE username = $1 AND field_id = $2 AND date = $3)`,
		username, fieldID, date,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check field booking", err)
	}
	return exists, nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx pgx.Tx, res *reservation.Reservation) (int64, error) {
	query := `
		INSERT INTO reservations (username, field_id, date, start_time, end_time, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := tx.QueryRow(
		ctx, query,
		res.Username(),
		res.FieldID(),
		res.DateString(),
		hourToTime(res.Slot().StartHour()),
		hourToTime(res.Slot().EndHour()),
		res.StartUTC(),
		res.EndUTC(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) Find(ctx context.Context, id int64) (*reservation.Reservation, error) {
	query := `
		SELECT id, username, field_id, to_char(date, 'YYYY-MM-DD'),
		       EXTRACT(HOUR FROM start_time)::int,
		       EXTRACT(HOUR FROM end_time)::int,
		       starts_at, ends_at
		FROM reservations
		WHERE id = $1
	`

	var (
		resID, fieldID     int64
		username, date     string
		startHour, endHour int
		startsAt, endsAt   time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&resID,
		&username,
		&fieldID,
		&date,
		&startHour,
		&endHour,
		&startsAt,
		&endsAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	slot, err := reservation.NewTimeSlot(date, fmt.Sprintf("%02d:00", startHour), fmt.Sprintf("%02d:00", endHour))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return reservation.Reconstruct(resID, username, fieldID, slot, startsAt, endsAt), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "no reservation with this id")
	}
	return nil
}

// hourToTime renders a whole hour as a TIME literal. Hour 24 becomes
// the day's last instant, since TIME cannot exceed 24:00:00 and the
// overlap predicate treats end bounds as exclusive.
func hourToTime(hour int) string {
	if hour >= 24 {
		return "24:00:00"
	}
	return fmt.Sprintf("%02d:00:00", hour)
}
