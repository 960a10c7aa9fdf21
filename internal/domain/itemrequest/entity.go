package itemrequest

import (
	"strings"
	"time"
	"unicode/utf8"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxDescriptionLength = 1000

var (
	ErrEmptyDescription   = errs.NewKind(errs.ErrValidation, "request description must not be blank")
	ErrDescriptionTooLong = errs.NewKind(errs.ErrValidation, "request description exceeds maximum length")
)

// ItemRequest is a want-ad other users may answer with their items.
type ItemRequest struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	createdAt   time.Time
}

func NewItemRequest(requesterID uuid.UUID, description string, now time.Time) (*ItemRequest, error) {
	d := strings.TrimSpace(description)
	if d == "" {
		return nil, ErrEmptyDescription
	}
	if utf8.RuneCountInString(d) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	return &ItemRequest{
		id:          uuid.New(),
		requesterID: requesterID,
		description: d,
		createdAt:   now,
	}, nil
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) RequesterID() uuid.UUID { return r.requesterID }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) CreatedAt() time.Time   { return r.createdAt }
