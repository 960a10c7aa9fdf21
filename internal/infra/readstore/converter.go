package readstore

import (
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/readmodel"
)

func toUserView(row query.Users) *readmodel.UserView {
	return &readmodel.UserView{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}
}

func toItemView(row query.Items) *readmodel.ItemView {
	return &readmodel.ItemView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		RequestID:   pgconv.UUIDPtrFromPgtype(row.RequestID),
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toItemViews(rows []query.Items) []*readmodel.ItemView {
	out := make([]*readmodel.ItemView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toItemView(row))
	}
	return out
}

func toBookingView(row query.BookingDetailsRow) *readmodel.BookingView {
	return &readmodel.BookingView{
		ID:      row.ID,
		Start:   pgconv.TimeFromPgtype(row.StartAt),
		End:     pgconv.TimeFromPgtype(row.EndAt),
		Status:  row.Status,
		Version: row.Version,
		Item:    *toItemView(row.Item),
		Booker: readmodel.UserView{
			ID:    row.BookerID,
			Name:  row.BookerName,
			Email: row.BookerEmail,
		},
	}
}

func toBookingViews(rows []query.BookingDetailsRow) []*readmodel.BookingView {
	out := make([]*readmodel.BookingView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBookingView(row))
	}
	return out
}

func toItemRequestView(row query.ItemRequests) *readmodel.ItemRequestView {
	return &readmodel.ItemRequestView{
		ID:          row.ID,
		RequesterID: row.RequesterID,
		Description: row.Description,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		Items:       []*readmodel.ItemView{},
	}
}

func toItemRequestViews(rows []query.ItemRequests) []*readmodel.ItemRequestView {
	out := make([]*readmodel.ItemRequestView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toItemRequestView(row))
	}
	return out
}
