package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Items struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	RequestID   pgtype.UUID
	Name        string
	Description string
	Available   bool
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type ItemRequests struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Description string
	CreatedAt   pgtype.Timestamptz
}

type Bookings struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	BookerID  uuid.UUID
	StartAt   pgtype.Timestamptz
	EndAt     pgtype.Timestamptz
	Status    string
	Version   int32
	CreatedAt pgtype.Timestamptz
}

type Comments struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	AuthorID  uuid.UUID
	Text      string
	CreatedAt pgtype.Timestamptz
}

// BookingDetailsRow is a booking joined with its item and booker.
type BookingDetailsRow struct {
	Bookings
	Item        Items
	BookerName  string
	BookerEmail string
}

type CommentWithAuthorRow struct {
	Comments
	AuthorName string
}
