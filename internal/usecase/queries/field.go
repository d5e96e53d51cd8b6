package queries

import (
	"context"

	"sportfields/internal/infra"
	"sportfields/internal/pkg/errs"
)

var ErrFieldNotFound = errs.New("field not found")

type FieldReadStore interface {
	FindByID(ctx context.Context, id int64) (*FieldView, error)
	FindConfirmed(ctx context.Context, sport string, sector int) ([]*FieldView, error)
	FindByOwner(ctx context.Context, username string) ([]*FieldView, error)
	FindReservedSince(ctx context.Context, fieldIDs []int64, fromDate string) ([]ReservedInterval, error)
}

type FieldQueries interface {
	GetByID(ctx context.Context, id int64) (*FieldView, error)
	// Search returns confirmed fields matching the filters, each with
	// its reserved intervals from the given date onward. A zero sector
	// or empty sport matches everything.
	Search(ctx context.Context, sport string, sector int, fromDate string) ([]*FieldWithReservations, error)
	ListByOwner(ctx context.Context, username string) ([]*FieldView, error)
	// ListByOwnerWithReservations is the owner dashboard view: every
	// field of the owner, confirmed or not, with reserved intervals
	// from the given date onward.
	ListByOwnerWithReservations(ctx context.Context, username, fromDate string) ([]*FieldWithReservations, error)
}

type fieldQueriesImpl struct {
	store FieldReadStore
}

func NewFieldQueries(store FieldReadStore) FieldQueries {
	return &fieldQueriesImpl{store: store}
}

func (q *fieldQueriesImpl) GetByID(ctx context.Context, id int64) (*FieldView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrFieldNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *fieldQueriesImpl) Search(ctx context.Context, sport string, sector int, fromDate string) ([]*FieldWithReservations, error) {
	fields, err := q.store.FindConfirmed(ctx, sport, sector)
	if err != nil {
		return nil, err
	}
	return q.attachReservations(ctx, fields, fromDate)
}

func (q *fieldQueriesImpl) ListByOwner(ctx context.Context, username string) ([]*FieldView, error) {
	return q.store.FindByOwner(ctx, username)
}

func (q *fieldQueriesImpl) ListByOwnerWithReservations(ctx context.Context, username, fromDate string) ([]*FieldWithReservations, error) {
	fields, err := q.store.FindByOwner(ctx, username)
	if err != nil {
		return nil, err
	}
	return q.attachReservations(ctx, fields, fromDate)
}

func (q *fieldQueriesImpl) attachReservations(ctx context.Context, fields []*FieldView, fromDate string) ([]*FieldWithReservations, error) {
	if len(fields) == 0 {
		return []*FieldWithReservations{}, nil
	}

	ids := make([]int64, 0, len(fields))
	for _, f := range fields {
		ids = append(ids, f.ID)
	}

	reserved, err := q.store.FindReservedSince(ctx, ids, fromDate)
	if err != nil {
		return nil, err
	}

	byField := make(map[int64][]ReservedInterval, len(fields))
	for _, r := range reserved {
		byField[r.FieldID] = append(byField[r.FieldID], r)
	}

	result := make([]*FieldWithReservations, 0, len(fields))
	for _, f := range fields {
		result = append(result, &FieldWithReservations{
			FieldView: *f,
			Reserved:  byField[f.ID],
		})
	}
	return result, nil
}
