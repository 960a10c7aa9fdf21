package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ItemView struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	RequestID   *uuid.UUID `json:"request_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ItemDetailsView is an item enriched for a particular viewer: LastBooking is
// only set when the viewer owns the item.
type ItemDetailsView struct {
	ItemView
	LastBooking *BookingView   `json:"last_booking,omitempty"`
	NextBooking *BookingView   `json:"next_booking,omitempty"`
	Comments    []*CommentView `json:"comments"`
}
