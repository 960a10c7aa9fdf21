package queries

import (
	"context"
	"strings"

	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/readmodel"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemQueries interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*readmodel.ItemView, error)
	GetDetails(ctx context.Context, viewerID, itemID uuid.UUID) (*readmodel.ItemDetailsView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*readmodel.ItemDetailsView, error)
	// Search returns nothing for blank text instead of every item.
	Search(ctx context.Context, text string) ([]*readmodel.ItemView, error)
}

type itemQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemQueries(uow shared.UnitOfWork, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{uow: uow, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID uuid.UUID) (*readmodel.ItemView, error) {
	var view *readmodel.ItemView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		v, err := tx.Items().FindByID(ctx, itemID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrItemNotFound)
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) GetDetails(ctx context.Context, viewerID, itemID uuid.UUID) (*readmodel.ItemDetailsView, error) {
	var details []*readmodel.ItemDetailsView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		v, err := tx.Items().FindByID(ctx, itemID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrItemNotFound)
		}
		details, err = q.enrich(ctx, tx, viewerID, []*readmodel.ItemView{v})
		return err
	})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*readmodel.ItemDetailsView, error) {
	var details []*readmodel.ItemDetailsView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		if _, err := tx.Users().FindByID(ctx, ownerID); err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		items, err := tx.Items().ListByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		details, err = q.enrich(ctx, tx, ownerID, items)
		return err
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*readmodel.ItemView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*readmodel.ItemView{}, nil
	}

	var views []*readmodel.ItemView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		var err error
		views, err = tx.Items().Search(ctx, text)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *itemQueriesImpl) enrich(ctx context.Context, tx shared.ReadTx, viewerID uuid.UUID, items []*readmodel.ItemView) ([]*readmodel.ItemDetailsView, error) {
	if len(items) == 0 {
		return []*readmodel.ItemDetailsView{}, nil
	}
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	bookings, err := tx.Bookings().ListByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	comments, err := tx.Comments().ListByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return assembleDetails(viewerID, q.clock.Now(), items, bookings, comments), nil
}
