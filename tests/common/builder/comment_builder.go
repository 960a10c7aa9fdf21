//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/comment"

	"github.com/google/uuid"
)

type CommentBuilder struct {
	ItemID   uuid.UUID
	AuthorID uuid.UUID
	Text     string
	Now      time.Time
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		ItemID:   uuid.New(),
		AuthorID: uuid.New(),
		Text:     "Worked great, thanks!",
		Now:      time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CommentBuilder) With(mutate func(*CommentBuilder)) *CommentBuilder {
	mutate(b)
	return b
}

func (b *CommentBuilder) BuildDomain() (*comment.Comment, error) {
	return comment.NewComment(b.ItemID, b.AuthorID, b.Text, b.Now)
}

func (b *CommentBuilder) WithText(text string) *CommentBuilder {
	b.Text = text
	return b
}
