package request

import (
	"shareit/internal/pkg/patch"
	"shareit/internal/usecase/shared"
)

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required,max=1000"`
}

type PageQuery struct {
	From *int `form:"from" binding:"omitempty,min=0,max=2147483647"`
	Size *int `form:"size" binding:"omitempty,min=1,max=2147483647"`
}

// Values applies the 0/DefaultPageSize defaults.
func (q *PageQuery) Values() (from, size int) {
	return patch.Coalesce(q.From, 0), patch.Coalesce(q.Size, shared.DefaultPageSize)
}
