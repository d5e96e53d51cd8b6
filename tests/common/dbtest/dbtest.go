//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sportfields/internal/pkg/password"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the subset of pgxpool.Pool the fixtures need, so they also
// work inside transactions.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// TestPassword is the plain-text password every fixture user gets.
const TestPassword = "parola123"

// CreateTestUser inserts a user row directly and returns the username,
// which is the local part of the email.
func CreateTestUser(t *testing.T, db DBLike, email, role string) string {
	t.Helper()

	username := email[:strings.Index(email, "@")]
	hash, err := password.HashPassword(TestPassword)
	require.NoError(t, err)

	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (username, first_name, last_name, email, password_hash, role)
		VALUES ($1, 'Test', 'User', $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		username, email, hash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT username FROM users WHERE email = $1", email).Scan(&username)
		require.NoError(t, err)
	}

	return username
}

// CreateTestField inserts a confirmed field for the owner and returns its id.
func CreateTestField(t *testing.T, db DBLike, owner, sport, name string, pricePerHour float64, schedule string) int64 {
	t.Helper()

	var fieldID int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO fields (owner_username, sport, name, address, city, sector, price_per_hour, schedule)
		VALUES ($1, $2, $3, 'Strada Unirii 10', 'Bucharest', 3, $4, $5)
		RETURNING id`,
		owner, sport, name, pricePerHour, schedule).Scan(&fieldID)
	require.NoError(t, err)

	return fieldID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except goose's version bookkeeping.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var table string
			if err := rows.Scan(&table); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, table)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})

	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
