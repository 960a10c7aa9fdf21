package response

import (
	"time"

	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ItemRequestResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []*ItemResponse `json:"items"`
}

func FromItemRequestView(v *readmodel.ItemRequestView) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          v.ID,
		Description: v.Description,
		Created:     v.CreatedAt.UTC(),
		Items:       FromItemViews(v.Items),
	}
}

func FromItemRequestViews(vs []*readmodel.ItemRequestView) []*ItemRequestResponse {
	res := make([]*ItemRequestResponse, len(vs))
	for i, v := range vs {
		res[i] = FromItemRequestView(v)
	}
	return res
}
