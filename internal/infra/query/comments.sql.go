package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createComment = `
INSERT INTO comments (id, item_id, author_id, text, created_at) VALUES ($1, $2, $3, $4, $5)
`

type CreateCommentParams struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	AuthorID  uuid.UUID
	Text      string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateComment(ctx context.Context, db DBTX, arg CreateCommentParams) error {
	_, err := db.Exec(ctx, createComment, arg.ID, arg.ItemID, arg.AuthorID, arg.Text, arg.CreatedAt)
	return err
}

const listCommentsByItemIDs = `
SELECT c.id, c.item_id, c.author_id, c.text, c.created_at, u.name
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id = ANY($1::uuid[])
ORDER BY c.created_at, c.id
`

func (q *Queries) ListCommentsByItemIDs(ctx context.Context, db DBTX, itemIDs []pgtype.UUID) ([]CommentWithAuthorRow, error) {
	rows, err := db.Query(ctx, listCommentsByItemIDs, itemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CommentWithAuthorRow{}
	for rows.Next() {
		var r CommentWithAuthorRow
		if err := rows.Scan(&r.ID, &r.ItemID, &r.AuthorID, &r.Text, &r.CreatedAt, &r.AuthorName); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
