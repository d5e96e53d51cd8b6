// Package pgconv converts between pgtype nullable wrappers and plain
// Go values at the repository boundary.
package pgconv

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// TimeFromPgtype unwraps a nullable timestamptz column. NULL comes
// back as the zero time.
func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
