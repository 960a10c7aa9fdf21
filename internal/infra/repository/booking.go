package repository

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) error
	GetBookingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db query.DBTX, arg query.UpdateBookingStatusParams) (int64, error)
	HasCompletedBooking(ctx context.Context, db query.DBTX, arg query.HasCompletedBookingParams) (bool, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	err := r.queries.CreateBooking(ctx, r.db, query.CreateBookingParams{
		ID:        b.ID(),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		StartAt:   pgconv.TimeToPgtype(b.Start()),
		EndAt:     pgconv.TimeToPgtype(b.End()),
		Status:    b.Status().String(),
		Version:   b.Version(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking status", err, infra.KindDBFailure)
	}
	return booking.ReconstructBooking(
		row.ID,
		row.ItemID,
		row.BookerID,
		pgconv.TimeFromPgtype(row.StartAt),
		pgconv.TimeFromPgtype(row.EndAt),
		status,
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

// UpdateStatus is a compare-and-set on the version b was loaded with.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	rows, err := r.queries.UpdateBookingStatus(ctx, r.db, query.UpdateBookingStatusParams{
		ID:              b.ID(),
		Status:          b.Status().String(),
		ExpectedVersion: b.Version(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if rows == 0 {
		return booking.ErrConcurrentDecision
	}
	return nil
}

func (r *BookingRepository) HasCompletedBooking(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	ok, err := r.queries.HasCompletedBooking(ctx, r.db, query.HasCompletedBookingParams{
		ItemID:   itemID,
		BookerID: bookerID,
		Now:      pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check completed booking", err)
	}
	return ok, nil
}
