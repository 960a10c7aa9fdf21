package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type BookingView struct {
	ID      uuid.UUID `json:"id"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Status  string    `json:"status"`
	Version int32     `json:"version"`
	Item    ItemView  `json:"item"`
	Booker  UserView  `json:"booker"`
}
