package query

import (
	"context"

	"shareit/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, item_id, booker_id, start_at, end_at, status, version, created_at`

const createBooking = `
INSERT INTO bookings (` + bookingColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateBookingParams struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	BookerID  uuid.UUID
	StartAt   pgtype.Timestamptz
	EndAt     pgtype.Timestamptz
	Status    string
	Version   int32
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID, arg.ItemID, arg.BookerID, arg.StartAt, arg.EndAt, arg.Status, arg.Version, arg.CreatedAt)
	return err
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	var b Bookings
	err := db.QueryRow(ctx, getBookingByID, id).Scan(
		&b.ID, &b.ItemID, &b.BookerID, &b.StartAt, &b.EndAt, &b.Status, &b.Version, &b.CreatedAt)
	return b, err
}

// The version predicate turns a stale decision into zero affected rows.
const updateBookingStatus = `
UPDATE bookings SET status = $2, version = version + 1
WHERE id = $1 AND version = $3
`

type UpdateBookingStatusParams struct {
	ID              uuid.UUID
	Status          string
	ExpectedVersion int32
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.ExpectedVersion)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const hasCompletedBooking = `
SELECT EXISTS (
  SELECT 1 FROM bookings
  WHERE item_id = $1 AND booker_id = $2 AND status = 'APPROVED' AND end_at < $3
)
`

type HasCompletedBookingParams struct {
	ItemID   uuid.UUID
	BookerID uuid.UUID
	Now      pgtype.Timestamptz
}

func (q *Queries) HasCompletedBooking(ctx context.Context, db DBTX, arg HasCompletedBookingParams) (bool, error) {
	var ok bool
	err := db.QueryRow(ctx, hasCompletedBooking, arg.ItemID, arg.BookerID, arg.Now).Scan(&ok)
	return ok, err
}

const bookingDetailsSelect = `
SELECT b.id, b.item_id, b.booker_id, b.start_at, b.end_at, b.status, b.version, b.created_at,
       i.id, i.owner_id, i.request_id, i.name, i.description, i.available, i.created_at, i.updated_at,
       u.name, u.email
FROM bookings b
JOIN items i ON i.id = b.item_id
JOIN users u ON u.id = b.booker_id
`

func (q *Queries) GetBookingDetails(ctx context.Context, db DBTX, id uuid.UUID) (BookingDetailsRow, error) {
	return scanBookingDetails(db.QueryRow(ctx, bookingDetailsSelect+`WHERE b.id = $1`, id))
}

func (q *Queries) ListBookingDetailsByBooker(ctx context.Context, db DBTX, bookerID uuid.UUID, filter booking.Filter) ([]BookingDetailsRow, error) {
	clause, args := BookingStateClause(filter, 2)
	sql := bookingDetailsSelect + `WHERE b.booker_id = $1` + clause + ` ORDER BY b.start_at DESC, b.id`
	rows, err := db.Query(ctx, sql, append([]any{bookerID}, args...)...)
	if err != nil {
		return nil, err
	}
	return collectBookingDetails(rows)
}

func (q *Queries) ListBookingDetailsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID, filter booking.Filter) ([]BookingDetailsRow, error) {
	clause, args := BookingStateClause(filter, 2)
	sql := bookingDetailsSelect + `WHERE i.owner_id = $1` + clause + ` ORDER BY b.start_at DESC, b.id`
	rows, err := db.Query(ctx, sql, append([]any{ownerID}, args...)...)
	if err != nil {
		return nil, err
	}
	return collectBookingDetails(rows)
}

func (q *Queries) ListBookingDetailsByItemIDs(ctx context.Context, db DBTX, itemIDs []pgtype.UUID) ([]BookingDetailsRow, error) {
	sql := bookingDetailsSelect + `WHERE b.item_id = ANY($1::uuid[]) ORDER BY b.start_at DESC, b.id`
	rows, err := db.Query(ctx, sql, itemIDs)
	if err != nil {
		return nil, err
	}
	return collectBookingDetails(rows)
}

func scanBookingDetails(row pgx.Row) (BookingDetailsRow, error) {
	var r BookingDetailsRow
	err := row.Scan(
		&r.ID, &r.ItemID, &r.BookerID, &r.StartAt, &r.EndAt, &r.Status, &r.Version, &r.CreatedAt,
		&r.Item.ID, &r.Item.OwnerID, &r.Item.RequestID, &r.Item.Name, &r.Item.Description, &r.Item.Available,
		&r.Item.CreatedAt, &r.Item.UpdatedAt,
		&r.BookerName, &r.BookerEmail,
	)
	return r, err
}

func collectBookingDetails(rows pgx.Rows) ([]BookingDetailsRow, error) {
	defer rows.Close()

	out := []BookingDetailsRow{}
	for rows.Next() {
		r, err := scanBookingDetails(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
