package request

import (
	"shareit/internal/pkg/patch"
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required,max=255"`
	Description string     `json:"description" binding:"required,max=1000"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"requestId"`
}

// UpdateItemRequest is a partial patch; absent fields keep their value.
type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Available   *bool   `json:"available"`
}

type SearchItemsQuery struct {
	Text string `form:"text"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r *CreateItemRequest) ToInput() commands.CreateItemInput {
	return commands.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Available:   patch.Coalesce(r.Available, false),
		RequestID:   r.RequestID,
	}
}

func (r *UpdateItemRequest) ToInput() commands.UpdateItemInput {
	return commands.UpdateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}
