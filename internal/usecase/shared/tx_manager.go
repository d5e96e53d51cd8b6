package shared

import (
	"context"
	"errors"
	"log/slog"

	"sportfields/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTxBegin  = errs.New("begin transaction")
	ErrTxCommit = errs.New("commit transaction")
)

// RunInTx runs fn inside a transaction, committing on success and
// rolling back on error. Booking code takes the field advisory lock
// through the tx it receives here.
func RunInTx[T any](ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.Begin(ctx)
	if err != nil {
		return zero, errs.Mark(err, ErrTxBegin)
	}
	defer func() {
		rollbackErr := tx.Rollback(ctx)
		if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("transaction rollback failed", "error", rollbackErr)
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, errs.Mark(err, ErrTxCommit)
	}
	return result, nil
}
