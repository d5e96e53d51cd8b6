package readstore

import (
	"context"

	"sportfields/internal/infra"
	"sportfields/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FieldReadStore struct {
	pool *pgxpool.Pool
}

func NewFieldReadStore(pool *pgxpool.Pool) *FieldReadStore {
	return &FieldReadStore{pool: pool}
}

const fieldColumns = `id, owner_username, sport, name, address, city, sector, price_per_hour, schedule, status, created_at`

func (s *FieldReadStore) FindByID(ctx context.Context, id int64) (*queries.FieldView, error) {
	query := `SELECT ` + fieldColumns + ` FROM fields WHERE id = $1`

	rows, err := s.pool.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find field", err)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanFieldView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find field", err)
	}
	return view, nil
}

// FindConfirmed lists bookable fields. An empty sport or zero sector
// leaves that filter open.
func (s *FieldReadStore) FindConfirmed(ctx context.Context, sport string, sector int) ([]*queries.FieldView, error) {
	query := `
		SELECT ` + fieldColumns + `
		FROM fields
		WHERE status = 'confirmed'
		  AND ($1 = '' OR sport = $1)
		  AND ($2 = 0 OR sector = $2)
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query, sport, sector)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search fields", err)
	}
	views, err := pgx.CollectRows(rows, scanFieldView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search fields", err)
	}
	return views, nil
}

func (s *FieldReadStore) FindByOwner(ctx context.Context, username string) ([]*queries.FieldView, error) {
	query := `SELECT ` + fieldColumns + ` FROM fields WHERE owner_username = $1 ORDER BY id`

	rows, err := s.pool.Query(ctx, query, username)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner fields", err)
	}
	views, err := pgx.CollectRows(rows, scanFieldView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner fields", err)
	}
	return views, nil
}

func (s *FieldReadStore) FindReservedSince(ctx context.Context, fieldIDs []int64, fromDate string) ([]queries.ReservedInterval, error) {
	query := `
		SELECT field_id,
		       to_char(date, 'YYYY-MM-DD'),
		       start_time::text,
		       end_time::text
		FROM reservations
		WHERE field_id = ANY($1)
		  AND date >= $2
		ORDER BY field_id, date, start_time
	`

	rows, err := s.pool.Query(ctx, query, fieldIDs, fromDate)
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

func scanFieldView(row pgx.CollectableRow) (*queries.FieldView, error) {
	var view queries.FieldView
	err := row.Scan(
		&view.ID,
		&view.OwnerUsername,
		&view.Sport,
		&view.Name,
		&view.Address,
		&view.City,
		&view.Sector,
		&view.PricePerHour,
		&view.Schedule,
		&view.Status,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
