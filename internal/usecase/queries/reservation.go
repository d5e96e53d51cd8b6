package queries

import (
	"context"

	"sportfields/internal/infra"
	"sportfields/internal/pkg/errs"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindByUser(ctx context.Context, username string) ([]*ReservationView, error)
	FindByField(ctx context.Context, fieldID int64) ([]*ReservationView, error)
	FindByUserOnDate(ctx context.Context, username, date string) ([]*ReservationView, error)
	FindByUserFieldDate(ctx context.Context, username string, fieldID int64, date string) ([]*ReservationView, error)
	FindIntervals(ctx context.Context, fieldID int64, date string) ([]ReservedInterval, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	ListByUser(ctx context.Context, username string) ([]*ReservationView, error)
	ListByField(ctx context.Context, fieldID int64) ([]*ReservationView, error)
	ListByUserOnDate(ctx context.Context, username, date string) ([]*ReservationView, error)
	ListByUserFieldDate(ctx context.Context, username string, fieldID int64, date string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, username string) ([]*ReservationView, error) {
	return q.store.FindByUser(ctx, username)
}

func (q *reservationQueriesImpl) ListByField(ctx context.Context, fieldID int64) ([]*ReservationView, error) {
	return q.store.FindByField(ctx, fieldID)
}

func (q *reservationQueriesImpl) ListByUserOnDate(ctx context.Context, username, date string) ([]*ReservationView, error) {
	return q.store.FindByUserOnDate(ctx, username, date)
}

func (q *reservationQueriesImpl) ListByUserFieldDate(ctx context.Context, username string, fieldID int64, date string) ([]*ReservationView, error) {
	return q.store.FindByUserFieldDate(ctx, username, fieldID, date)
}
