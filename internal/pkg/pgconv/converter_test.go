//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"sportfields/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestTimeFromPgtype(t *testing.T) {
	t.Run("valid value unwraps", func(t *testing.T) {
		at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		got := pgconv.TimeFromPgtype(pgtype.Timestamptz{Time: at, Valid: true})
		assert.Equal(t, at, got)
	})

	t.Run("NULL unwraps to the zero time", func(t *testing.T) {
		got := pgconv.TimeFromPgtype(pgtype.Timestamptz{})
		assert.True(t, got.IsZero())
	})
}

func TestTimeToPgtype(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got := pgconv.TimeToPgtype(at)
	assert.True(t, got.Valid)
	assert.Equal(t, at, got.Time)
}
