package commands

import (
	"context"
	"time"
)

// UserCredentials is the write-side read of an account row. Commands
// never depend on the read-side query types.
type UserCredentials struct {
	ID              int64
	Username        string
	Email           string
	PasswordHash    string
	Role            string
	FavouriteSports string
}

// Mailer delivers account mail. Failures are reported to the caller;
// whether they abort the operation is the command's call.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string, expiresAt time.Time) error
}
