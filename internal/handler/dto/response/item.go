package response

import (
	"time"

	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

// BookingShortResponse is the booking summary embedded in item details.
type BookingShortResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
}

type ItemDetailsResponse struct {
	ItemResponse
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []*CommentResponse    `json:"comments"`
}

func FromItemView(v *readmodel.ItemView) *ItemResponse {
	var res ItemResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromItemViews(vs []*readmodel.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, len(vs))
	for i, v := range vs {
		res[i] = FromItemView(v)
	}
	return res
}

func FromItemDetailsView(v *readmodel.ItemDetailsView) *ItemDetailsResponse {
	return &ItemDetailsResponse{
		ItemResponse: *FromItemView(&v.ItemView),
		LastBooking:  toBookingShort(v.LastBooking),
		NextBooking:  toBookingShort(v.NextBooking),
		Comments:     FromCommentViews(v.Comments),
	}
}

func FromItemDetailsViews(vs []*readmodel.ItemDetailsView) []*ItemDetailsResponse {
	res := make([]*ItemDetailsResponse, len(vs))
	for i, v := range vs {
		res[i] = FromItemDetailsView(v)
	}
	return res
}

func toBookingShort(b *readmodel.BookingView) *BookingShortResponse {
	if b == nil {
		return nil
	}
	return &BookingShortResponse{
		ID:       b.ID,
		BookerID: b.Booker.ID,
		Start:    b.Start.UTC(),
		End:      b.End.UTC(),
		Status:   b.Status,
	}
}
