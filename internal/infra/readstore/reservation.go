package readstore

import (
	"context"

	"sportfields/internal/domain/availability"
	"sportfields/internal/infra"
	"sportfields/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

const reservationSelect = `
	SELECT r.id,
	       r.username,
	       r.field_id,
	       f.name,
	       f.sport,
	       f.address,
	       f.price_per_hour,
	       to_char(r.date, 'YYYY-MM-DD'),
	       r.start_time::text,
	       r.end_time::text,
	       r.created_at
	FROM reservations r
	JOIN fields f ON f.id = r.field_id
`

func (s *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	rows, err := s.pool.Query(ctx, reservationSelect+` WHERE r.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanReservationView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindByUser(ctx context.Context, username string) ([]*queries.ReservationView, error) {
	query := reservationSelect + ` WHERE r.username = $1 ORDER BY r.date, r.start_time`

	rows, err := s.pool.Query(ctx, query, username)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations", err)
	}
	views, err := pgx.CollectRows(rows, scanReservationView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations", err)
	}
	return views, nil
}

func (s *ReservationReadStore) FindByField(ctx context.Context, fieldID int64) ([]*queries.ReservationView, error) {
	query := reservationSelect + ` WHERE r.field_id = $1 ORDER BY r.date, r.start_time`

	rows, err := s.pool.Query(ctx, query, fieldID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list field reservations", err)
	}
	views, err := pgx.CollectRows(rows, scanReservationView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list field reservations", err)
	}
	return views, nil
}

func (s *ReservationReadStore) FindByUserOnDate(ctx context.Context, username, date string) ([]*queries.ReservationView, error) {
	query := reservationSelect + ` WHERE r.username = $1 AND r.date = $2 ORDER BY r.start_time`

	rows, err := s.pool.Query(ctx, query, username, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations for date", err)
	}
	views, err := pgx.CollectRows(rows, scanReservationView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations for date", err)
	}
	return views, nil
}

func (s *ReservationReadStore) FindByUserFieldDate(ctx context.Context, username string, fieldID int64, date string) ([]*queries.ReservationView, error) {
	query := reservationSelect + ` WHERE r.username = $1 AND r.field_id = $2 AND r.date = $3 ORDER BY r.start_time`

	rows, err := s.pool.Query(ctx, query, username, fieldID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user field reservations", err)
	}
	views, err := pgx.CollectRows(rows, scanReservationView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user field reservations", err)
	}
	return views, nil
}

func (s *ReservationReadStore) FindIntervals(ctx context.Context, fieldID int64, date string) ([]queries.ReservedInterval, error) {
	query := `
		SELECT field_id,
		       to_char(date, 'YYYY-MM-DD'),
		       start_time::text,
		       end_time::text
		FROM reservations
		WHERE field_id = $1
		  AND date = $2
		ORDER BY start_time
	`

	rows, err := s.pool.Query(ctx, query, fieldID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reserved intervals", err)
	}
	intervals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.ReservedInterval, error) {
		var (
			iv         queries.ReservedInterval
			start, end string
		)
		if err := row.Scan(&iv.FieldID, &iv.Date, &start, &end); err != nil {
			return iv, err
		}
		return iv, hoursInto(start, end, &iv.StartHour, &iv.EndHour)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reserved intervals", err)
	}
	return intervals, nil
}

func scanReservationView(row pgx.CollectableRow) (*queries.ReservationView, error) {
	var (
		view       queries.ReservationView
		start, end string
	)
	err := row.Scan(
		&view.ID,
		&view.Username,
		&view.FieldID,
		&view.FieldName,
		&view.Sport,
		&view.Address,
		&view.PricePerHour,
		&view.Date,
		&start,
		&end,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := hoursInto(start, end, &view.StartHour, &view.EndHour); err != nil {
		return nil, err
	}
	return &view, nil
}

// hoursInto truncates the stored TIME columns to their whole hours.
// An end of "24:00:00" marks a slot running to midnight.
func hoursInto(start, end string, startHour, endHour *int) error {
	sh, err := availability.HourOf(start)
	if err != nil {
		return err
	}
	eh, err := availability.HourOf(end)
	if err != nil {
		return err
	}
	*startHour = sh
	*endHour = eh
	return nil
}
