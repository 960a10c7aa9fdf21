package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db query.DBTX, arg query.CreateCommentParams) error
}

type CommentRepository struct {
	queries CommentWriteQueries
	db      query.DBTX
}

func NewCommentRepository(queries CommentWriteQueries, db query.DBTX) *CommentRepository {
	return &CommentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	err := r.queries.CreateComment(ctx, r.db, query.CreateCommentParams{
		ID:        c.ID(),
		ItemID:    c.ItemID(),
		AuthorID:  c.AuthorID(),
		Text:      c.Text().String(),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create comment", err)
	}
	return nil
}
