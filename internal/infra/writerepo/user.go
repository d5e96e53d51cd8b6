package writerepo

import (
	"context"
	"time"

	"sportfields/internal/domain/user"
	"sportfields/internal/infra"
	"sportfields/internal/pkg/pgconv"
	"sportfields/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	query := `
		INSERT INTO users (username, first_name, last_name, email, password_hash, role, favourite_sports)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(
		ctx, query,
		u.Username(),
		u.FirstName(),
		u.LastName(),
		u.Email().String(),
		u.PasswordHash(),
		u.Role().String(),
		u.FavouriteSports(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindCredentialsByEmail(ctx context.Context, email string) (*commands.UserCredentials, error) {
	query := `
		SELECT id, username, email, password_hash, role, favourite_sports
		FROM users
		WHERE email = $1
	`

	var creds commands.UserCredentials
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&creds.ID,
		&creds.Username,
		&creds.Email,
		&creds.PasswordHash,
		&creds.Role,
		&creds.FavouriteSports,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &creds, nil
}

func (r *UserRepository) FindCredentialsByResetToken(ctx context.Context, token string) (*commands.UserCredentials, time.Time, error) {
	query := `
		SELECT id, username, email, password_hash, role, favourite_sports, reset_expires
		FROM users
		WHERE reset_token = $1
	`

	var (
		creds   commands.UserCredentials
		expires pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&creds.ID,
		&creds.Username,
		&creds.Email,
		&creds.PasswordHash,
		&creds.Role,
		&creds.FavouriteSports,
		&expires,
	)
	if err != nil {
		return nil, time.Time{}, infra.WrapRepoErr("failed to find user by reset token", err)
	}
	// reset_expires is nullable. A NULL unwraps to the zero time,
	// which the caller reads as already expired.
	return &creds, pgconv.TimeFromPgtype(expires), nil
}

func (r *UserRepository) SetResetToken(ctx context.Context, email, token string, expires time.Time) error {
	query := `
		UPDATE users
		SET reset_token = $2, reset_expires = $3
		WHERE email = $1
	`

	tag, err := r.pool.Exec(ctx, query, email, token, pgconv.TimeToPgtype(expires))
	if err != nil {
		return infra.WrapRepoErr("failed to set reset token", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "no user with this email")
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, reset_token = NULL, reset_expires = NULL
		WHERE username = $1
	`

	tag, err := r.pool.Exec(ctx, query, username, passwordHash)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "no user with this username")
	}
	return nil
}

func (r *UserRepository) UpdateFavouriteSports(ctx context.Context, username, sports string) error {
	query := `
		UPDATE users
		SET favourite_sports = $2
		WHERE username = $1
	`

	tag, err := r.pool.Exec(ctx, query, username, sports)
	if err != nil {
		return infra.WrapRepoErr("failed to update favourite sports", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "no user with this username")
	}
	return nil
}
