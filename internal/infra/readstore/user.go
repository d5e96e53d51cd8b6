package readstore

import (
	"context"

	"sportfields/internal/infra"
	"sportfields/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.UserView, error) {
	query := `
		SELECT id, username, first_name, last_name, email, role, favourite_sports, created_at
		FROM users
		WHERE username = $1
	`

	var view queries.UserView
	err := s.pool.QueryRow(ctx, query, username).Scan(
		&view.ID,
		&view.Username,
		&view.FirstName,
		&view.LastName,
		&view.Email,
		&view.Role,
		&view.FavouriteSports,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}
