package shared

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-write transaction for commands
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for consistent multi-table reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx ReadTx) error) error
}

// Tx exposes write repositories bound to one transaction.
type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	ItemRequests() ItemRequestRepository
	Bookings() BookingRepository
	Comments() CommentRepository
}

// ReadTx exposes read stores bound to one read-only transaction.
type ReadTx interface {
	Users() UserReadStore
	Items() ItemReadStore
	ItemRequests() ItemRequestReadStore
	Bookings() BookingReadStore
	Comments() CommentReadStore
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type ItemRepository interface {
	Create(ctx context.Context, it *item.Item) error
	Update(ctx context.Context, it *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, r *itemrequest.ItemRequest) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus persists b.Status() only if the stored version still equals
	// b.Version(); otherwise it returns booking.ErrConcurrentDecision.
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	HasCompletedBooking(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) error
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserView, error)
	List(ctx context.Context) ([]*readmodel.UserView, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*readmodel.ItemView, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Search(ctx context.Context, text string) ([]*readmodel.ItemView, error)
	ListByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*readmodel.ItemView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingView, error)
	// List results are ordered by start descending.
	ListByBooker(ctx context.Context, bookerID uuid.UUID, filter booking.Filter) ([]*readmodel.BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter booking.Filter) ([]*readmodel.BookingView, error)
	ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*readmodel.BookingView, error)
}

type CommentReadStore interface {
	// ListByItemIDs is ordered by creation time ascending.
	ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*readmodel.CommentView, error)
}

type ItemRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ItemRequestView, error)
	// Both lists are ordered newest first; Items is left empty.
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*readmodel.ItemRequestView, error)
	ListOthers(ctx context.Context, requesterID uuid.UUID, page Page) ([]*readmodel.ItemRequestView, error)
}
