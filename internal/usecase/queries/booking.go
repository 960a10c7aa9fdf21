package queries

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/policy"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/readmodel"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actorID, bookingID uuid.UUID) (*readmodel.BookingView, error)
	// state is parsed leniently; unknown values list everything.
	ListByBooker(ctx context.Context, bookerID uuid.UUID, state string) ([]*readmodel.BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, state string) ([]*readmodel.BookingView, error)
}

type bookingQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingQueries(uow shared.UnitOfWork, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{uow: uow, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, bookingID uuid.UUID) (*readmodel.BookingView, error) {
	var view *readmodel.BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		v, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBookingNotFound)
		}
		parties := policy.BookingParties{BookerID: v.Booker.ID, OwnerID: v.Item.OwnerID}
		if err = policy.RequireBookingViewer(actorID, parties); err != nil {
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

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID uuid.UUID, state string) ([]*readmodel.BookingView, error) {
	filter := booking.NewFilter(state, q.clock.Now())

	var views []*readmodel.BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		if _, err := tx.Users().FindByID(ctx, bookerID); err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		var err error
		views, err = tx.Bookings().ListByBooker(ctx, bookerID, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, state string) ([]*readmodel.BookingView, error) {
	filter := booking.NewFilter(state, q.clock.Now())

	var views []*readmodel.BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		if _, err := tx.Users().FindByID(ctx, ownerID); err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		count, err := tx.Items().CountByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrOwnerHasNoItems
		}
		views, err = tx.Bookings().ListByOwner(ctx, ownerID, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
