package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ItemRequestView struct {
	ID          uuid.UUID   `json:"id"`
	RequesterID uuid.UUID   `json:"requester_id"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []*ItemView `json:"items"`
}
