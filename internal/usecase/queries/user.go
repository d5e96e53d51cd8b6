package queries

import (
	"context"

	"sportfields/internal/infra"
	"sportfields/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type UserReadStore interface {
	FindByUsername(ctx context.Context, username string) (*UserView, error)
}

type UserQueries interface {
	GetByUsername(ctx context.Context, username string) (*UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetByUsername(ctx context.Context, username string) (*UserView, error) {
	view, err := q.store.FindByUsername(ctx, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}
	return view, nil
}
