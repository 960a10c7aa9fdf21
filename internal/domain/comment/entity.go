package comment

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	id        uuid.UUID
	itemID    uuid.UUID
	authorID  uuid.UUID
	text      Text
	createdAt time.Time
}

// NewComment does not check eligibility; see policy.RequireCompletedBooking.
func NewComment(itemID, authorID uuid.UUID, text string, now time.Time) (*Comment, error) {
	t, err := NewText(text)
	if err != nil {
		return nil, err
	}
	return &Comment{
		id:        uuid.New(),
		itemID:    itemID,
		authorID:  authorID,
		text:      t,
		createdAt: now,
	}, nil
}

func (c *Comment) ID() uuid.UUID        { return c.id }
func (c *Comment) ItemID() uuid.UUID    { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID  { return c.authorID }
func (c *Comment) Text() Text           { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
