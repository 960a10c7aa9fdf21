package request

import (
	"time"

	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateBookingRequest leaves the start/end ordering to the booking entity.
type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type ApprovalQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}

type BookingStateQuery struct {
	State string `form:"state"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{ItemID: r.ItemID, Start: r.Start, End: r.End}
}
