package commands

import (
	"context"
	"log/slog"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/policy"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error)
	Decide(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().FindByID(ctx, bookerID); err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		it, err := tx.Items().FindByID(ctx, in.ItemID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrItemNotFound)
		}

		b, err := booking.NewBooking(it.ID(), bookerID, it.Available(), in.Start, in.End, uc.clock.Now())
		if err != nil {
			return err
		}
		if err = tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		createdID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{BookingID: createdID}, nil
}

func (uc *bookingCommandsImpl) Decide(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) error {
	var decided booking.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBookingNotFound)
		}
		it, err := tx.Items().FindByID(ctx, b.ItemID())
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrItemNotFound)
		}

		parties := policy.BookingParties{BookerID: b.BookerID(), OwnerID: it.OwnerID()}
		if err = policy.RequireApprover(actorID, parties); err != nil {
			return err
		}
		if err = b.Decide(approve); err != nil {
			return err
		}
		if err = tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}
		decided = b.Status()
		return nil
	})
	if err != nil {
		return err
	}

	metrics.IncBookingDecision(decided.String())
	slog.Info("booking decided", "booking_id", bookingID.String(), "status", decided.String())
	return nil
}
