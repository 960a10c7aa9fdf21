package response

import (
	"time"

	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID     uuid.UUID    `json:"id"`
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
	Status string       `json:"status"`
	Item   ItemResponse `json:"item"`
	Booker UserResponse `json:"booker"`
}

func FromBookingView(v *readmodel.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start.UTC(),
		End:    v.End.UTC(),
		Status: v.Status,
		Item:   *FromItemView(&v.Item),
		Booker: *FromUserView(&v.Booker),
	}
}

func FromBookingViews(vs []*readmodel.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}
