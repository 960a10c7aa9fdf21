//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/itemrequest"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ItemRequestBuilder struct {
	RequesterID uuid.UUID
	Description string
	Now         time.Time
}

func NewItemRequestBuilder() *ItemRequestBuilder {
	return &ItemRequestBuilder{
		RequesterID: uuid.New(),
		Description: "Need a ladder for the weekend",
		Now:         time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ItemRequestBuilder) With(mutate func(*ItemRequestBuilder)) *ItemRequestBuilder {
	mutate(b)
	return b
}

func (b *ItemRequestBuilder) BuildDomain() (*itemrequest.ItemRequest, error) {
	return itemrequest.NewItemRequest(b.RequesterID, b.Description, b.Now)
}

func (b *ItemRequestBuilder) BuildReadModel() *readmodel.ItemRequestView {
	return &readmodel.ItemRequestView{
		ID:          uuid.New(),
		RequesterID: b.RequesterID,
		Description: b.Description,
		CreatedAt:   b.Now,
		Items:       []*readmodel.ItemView{},
	}
}

func (b *ItemRequestBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequestRequest {
	return reqdto.CreateItemRequestRequest{Description: b.Description}
}

func (b *ItemRequestBuilder) WithDescription(description string) *ItemRequestBuilder {
	b.Description = description
	return b
}
