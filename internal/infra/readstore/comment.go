package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CommentReadQueries interface {
	ListCommentsByItemIDs(ctx context.Context, db query.DBTX, itemIDs []pgtype.UUID) ([]query.CommentWithAuthorRow, error)
}

type CommentReadStore struct {
	queries CommentReadQueries
	db      query.DBTX
}

func NewCommentReadStore(queries CommentReadQueries, db query.DBTX) *CommentReadStore {
	return &CommentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommentReadStore) ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]*readmodel.CommentView, error) {
	rows, err := r.queries.ListCommentsByItemIDs(ctx, r.db, pgconv.UUIDsToPgArray(itemIDs))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	out := make([]*readmodel.CommentView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &readmodel.CommentView{
			ID:         row.ID,
			ItemID:     row.ItemID,
			AuthorID:   row.AuthorID,
			AuthorName: row.AuthorName,
			Text:       row.Text,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
