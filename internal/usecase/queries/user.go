package queries

import (
	"context"

	"shareit/internal/usecase/readmodel"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*readmodel.UserView, error)
	List(ctx context.Context) ([]*readmodel.UserView, error)
}

type userQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUserQueries(uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{uow: uow}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, userID uuid.UUID) (*readmodel.UserView, error) {
	var view *readmodel.UserView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		v, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*readmodel.UserView, error) {
	var views []*readmodel.UserView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		var err error
		views, err = tx.Users().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
