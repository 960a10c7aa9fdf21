//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ItemID        uuid.UUID
	BookerID      uuid.UUID
	ItemAvailable bool
	Start         time.Time
	End           time.Time
	Status        booking.Status
	Version       int32
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ItemID:        uuid.New(),
		BookerID:      uuid.New(),
		ItemAvailable: true,
		Start:         now.Add(24 * time.Hour),
		End:           now.Add(48 * time.Hour),
		Status:        booking.StatusWaiting,
		Version:       1,
		Now:           now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain goes through the constructor, so Status and Version are ignored.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.ItemID, b.BookerID, b.ItemAvailable, b.Start, b.End, b.Now)
}

// BuildStored rebuilds a persisted booking with the configured status.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.ReconstructBooking(uuid.New(), b.ItemID, b.BookerID, b.Start, b.End, b.Status, b.Version, b.Now)
}

func (b *BookingBuilder) BuildReadModel(it readmodel.ItemView, booker readmodel.UserView) *readmodel.BookingView {
	return &readmodel.BookingView{
		ID:      uuid.New(),
		Start:   b.Start,
		End:     b.End,
		Status:  b.Status.String(),
		Version: b.Version,
		Item:    it,
		Booker:  booker,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{ItemID: b.ItemID, Start: b.Start, End: b.End}
}

func (b *BookingBuilder) WithItem(itemID uuid.UUID) *BookingBuilder {
	b.ItemID = itemID
	return b
}

func (b *BookingBuilder) WithBooker(bookerID uuid.UUID) *BookingBuilder {
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}
