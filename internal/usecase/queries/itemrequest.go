package queries

import (
	"context"

	"shareit/internal/usecase/readmodel"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemRequestQueries interface {
	GetByID(ctx context.Context, userID, requestID uuid.UUID) (*readmodel.ItemRequestView, error)
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*readmodel.ItemRequestView, error)
	// ListOthers pages through requests made by everyone except userID.
	ListOthers(ctx context.Context, userID uuid.UUID, from, size int) ([]*readmodel.ItemRequestView, error)
}

type itemRequestQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewItemRequestQueries(uow shared.UnitOfWork) ItemRequestQueries {
	return &itemRequestQueriesImpl{uow: uow}
}

func (q *itemRequestQueriesImpl) GetByID(ctx context.Context, userID, requestID uuid.UUID) (*readmodel.ItemRequestView, error) {
	var view *readmodel.ItemRequestView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		if _, err := tx.Users().FindByID(ctx, userID); err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		v, err := tx.ItemRequests().FindByID(ctx, requestID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrItemRequestNotFound)
		}
		if err = attachItems(ctx, tx, []*readmodel.ItemRequestView{v}); err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *itemRequestQueriesImpl) ListOwn(ctx context.Context, userID uuid.UUID) ([]*readmodel.ItemRequestView, error) {
	var views []*readmodel.ItemRequestView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		if _, err := tx.Users().FindByID(ctx, userID); err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		var err error
		if views, err = tx.ItemRequests().ListByRequester(ctx, userID); err != nil {
			return err
		}
		return attachItems(ctx, tx, views)
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *itemRequestQueriesImpl) ListOthers(ctx context.Context, userID uuid.UUID, from, size int) ([]*readmodel.ItemRequestView, error) {
	page, err := shared.NewPage(from, size)
	if err != nil {
		return nil, err
	}

	var views []*readmodel.ItemRequestView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		if _, err := tx.Users().FindByID(ctx, userID); err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		var err error
		if views, err = tx.ItemRequests().ListOthers(ctx, userID, page); err != nil {
			return err
		}
		return attachItems(ctx, tx, views)
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func attachItems(ctx context.Context, tx shared.ReadTx, requests []*readmodel.ItemRequestView) error {
	if len(requests) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}
	items, err := tx.Items().ListByRequestIDs(ctx, ids)
	if err != nil {
		return err
	}

	byRequest := make(map[uuid.UUID][]*readmodel.ItemView, len(requests))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}
	for _, r := range requests {
		r.Items = byRequest[r.ID]
		if r.Items == nil {
			r.Items = []*readmodel.ItemView{}
		}
	}
	return nil
}
