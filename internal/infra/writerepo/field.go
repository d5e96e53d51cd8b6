package writerepo

import (
	"context"
	"time"

	"sportfields/internal/domain/field"
	"sportfields/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FieldRepository struct {
	pool *pgxpool.Pool
}

func NewFieldRepository(pool *pgxpool.Pool) *FieldRepository {
	return &FieldRepository{pool: pool}
}

func (r *FieldRepository) Create(ctx context.Context, f *field.Field) (int64, error) {
	query := `
		INSERT INTO fields (owner_username, sport, name, address, city, sector, price_per_hour, schedule, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(
		ctx, query,
		f.OwnerUsername(),
		f.Sport(),
		f.Name(),
		f.Address(),
		f.City(),
		f.Sector(),
		f.PricePerHour(),
		f.Schedule().String(),
		string(f.Status()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create field", err)
	}
	return id, nil
}

func (r *FieldRepository) Find(ctx context.Context, id int64) (*field.Field, error) {
	query := `
		SELECT id, owner_username, sport, name, address, city, sector, price_per_hour, schedule, status, created_at
		FROM fields
		WHERE id = $1
	`

	var (
		fieldID      int64
		sector       int
		pricePerHour float64
		createdAt    time.Time

		owner, sport, name, address, city, rawSchedule, rawStatus string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&fieldID,
		&owner,
		&sport,
		&name,
		&address,
		&city,
		&sector,
		&pricePerHour,
		&rawSchedule,
		&rawStatus,
		&createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find field", err)
	}

	status, err := field.NewStatus(rawStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find field", err)
	}
	// A stored schedule that no longer parses keeps every hour closed
	// rather than failing the read.
	schedule, _ := field.NewSchedule(rawSchedule)

	return field.Reconstruct(fieldID, owner, sport, name, address, city, sector, pricePerHour, schedule, status, createdAt), nil
}

func (r *FieldRepository) UpdatePricing(ctx context.Context, id int64, pricePerHour float64, schedule string) error {
	query := `
		UPDATE fields
		SET price_per_hour = $2, schedule = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, pricePerHour, schedule)
	if err != nil {
		return infra.WrapRepoErr("failed to update field", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "no field with this id")
	}
	return nil
}

// Delete removes the field; its reservations go with it through the
// foreign key cascade.
func (r *FieldRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM fields WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete field", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "no field with this id")
	}
	return nil
}
