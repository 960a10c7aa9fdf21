package readstore

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingDetails(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingDetailsRow, error)
	ListBookingDetailsByBooker(ctx context.Context, db query.DBTX, bookerID uuid.UUID, filter booking.Filter) ([]query.BookingDetailsRow, error)
	ListBookingDetailsByOwner(ctx context.Context, db query.DBTX, ownerID uuid.UUID, filter booking.Filter) ([]query.BookingDetailsRow, error)
	ListBookingDetailsByItemIDs(ctx context.Context, db query.DBTX, itemIDs []pgtype.UUID) ([]query.BookingDetailsRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingView, error) {
	row, err := r.queries.GetBookingDetails(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ListByBooker(ctx context.Context, bookerID uuid.UUID, filter booking.Filter) ([]*readmodel.BookingView, error) {
	rows, err := r.queries.ListBookingDetailsByBooker(ctx, r.db, bookerID, filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by booker", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter booking.Filter) ([]*readmodel.BookingView, error) {
	rows, err := r.queries.ListBookingDetailsByOwner(ctx, r.db, ownerID, filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by owner", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*readmodel.BookingView, error) {
	rows, err := r.queries.ListBookingDetailsByItemIDs(ctx, r.db, pgconv.UUIDsToPgArray(itemIDs))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by item", err)
	}
	return toBookingViews(rows), nil
}
