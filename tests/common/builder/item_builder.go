//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	OwnerID     uuid.UUID
	RequestID   *uuid.UUID
	Name        string
	Description string
	Available   bool
	Now         time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		OwnerID:     uuid.New(),
		Name:        "Cordless drill",
		Description: "18V drill with two batteries",
		Available:   true,
		Now:         time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(b.OwnerID, b.Name, b.Description, b.Available, b.RequestID, b.Now)
}

func (b *ItemBuilder) BuildReadModel() *readmodel.ItemView {
	return &readmodel.ItemView{
		ID:          uuid.New(),
		OwnerID:     b.OwnerID,
		RequestID:   b.RequestID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		CreatedAt:   b.Now,
	}
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := b.Available
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   &available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) WithOwner(ownerID uuid.UUID) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithDescription(description string) *ItemBuilder {
	b.Description = description
	return b
}

func (b *ItemBuilder) WithRequest(requestID uuid.UUID) *ItemBuilder {
	b.RequestID = &requestID
	return b
}

func (b *ItemBuilder) AsUnavailable() *ItemBuilder {
	b.Available = false
	return b
}
