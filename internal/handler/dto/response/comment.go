package response

import (
	"time"

	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromCommentView(v *readmodel.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         v.ID,
		Text:       v.Text,
		AuthorName: v.AuthorName,
		Created:    v.CreatedAt.UTC(),
	}
}

// FromCommentViews never returns nil so the field always renders as a list.
func FromCommentViews(vs []*readmodel.CommentView) []*CommentResponse {
	res := make([]*CommentResponse, len(vs))
	for i, v := range vs {
		res[i] = FromCommentView(v)
	}
	return res
}
