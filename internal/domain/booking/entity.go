package booking

import (
	"time"

	"shareit/internal/domain/policy"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrIllegalTransition  = errs.NewKind(errs.ErrValidation, "illegal state transition: booking is already decided")
	ErrConcurrentDecision = errs.NewKind(errs.ErrConflict, "booking was modified concurrently")
)

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	start     time.Time
	end       time.Time
	status    Status
	version   int32
	createdAt time.Time
}

// NewBooking creates a WAITING booking after checking the item availability
// and the period.
func NewBooking(itemID, bookerID uuid.UUID, itemAvailable bool, start, end, now time.Time) (*Booking, error) {
	if err := policy.IsBookingCreatable(itemAvailable, start, end); err != nil {
		return nil, err
	}
	return &Booking{
		id:        uuid.New(),
		itemID:    itemID,
		bookerID:  bookerID,
		start:     start,
		end:       end,
		status:    StatusWaiting,
		version:   1,
		createdAt: now,
	}, nil
}

func ReconstructBooking(id, itemID, bookerID uuid.UUID, start, end time.Time, status Status, version int32, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		start:     start,
		end:       end,
		status:    status,
		version:   version,
		createdAt: createdAt,
	}
}

// Decide moves a WAITING booking to APPROVED or REJECTED. The version is
// left untouched; the repository compares it when persisting.
func (b *Booking) Decide(approve bool) error {
	if b.status != StatusWaiting {
		return ErrIllegalTransition
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

// IsCompletedBy reports an approved rental by userID that ended before now.
func (b *Booking) IsCompletedBy(userID uuid.UUID, now time.Time) bool {
	return b.bookerID == userID && b.status == StatusApproved && b.end.Before(now)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Start() time.Time     { return b.start }
func (b *Booking) End() time.Time       { return b.end }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Version() int32       { return b.version }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
