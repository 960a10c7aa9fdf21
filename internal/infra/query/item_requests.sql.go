package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const itemRequestColumns = `id, requester_id, description, created_at`

const createItemRequest = `
INSERT INTO item_requests (` + itemRequestColumns + `) VALUES ($1, $2, $3, $4)
`

type CreateItemRequestParams struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	Description string
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateItemRequest(ctx context.Context, db DBTX, arg CreateItemRequestParams) error {
	_, err := db.Exec(ctx, createItemRequest, arg.ID, arg.RequesterID, arg.Description, arg.CreatedAt)
	return err
}

const itemRequestExists = `SELECT EXISTS (SELECT 1 FROM item_requests WHERE id = $1)`

func (q *Queries) ItemRequestExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	var ok bool
	err := db.QueryRow(ctx, itemRequestExists, id).Scan(&ok)
	return ok, err
}

const getItemRequestByID = `SELECT ` + itemRequestColumns + ` FROM item_requests WHERE id = $1`

func (q *Queries) GetItemRequestByID(ctx context.Context, db DBTX, id uuid.UUID) (ItemRequests, error) {
	return scanItemRequest(db.QueryRow(ctx, getItemRequestByID, id))
}

const listItemRequestsByRequester = `
SELECT ` + itemRequestColumns + ` FROM item_requests
WHERE requester_id = $1
ORDER BY created_at DESC, id
`

func (q *Queries) ListItemRequestsByRequester(ctx context.Context, db DBTX, requesterID uuid.UUID) ([]ItemRequests, error) {
	rows, err := db.Query(ctx, listItemRequestsByRequester, requesterID)
	if err != nil {
		return nil, err
	}
	return collectItemRequests(rows)
}

const listItemRequestsExcluding = `
SELECT ` + itemRequestColumns + ` FROM item_requests
WHERE requester_id <> $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3
`

type ListItemRequestsExcludingParams struct {
	RequesterID uuid.UUID
	Limit       int32
	Offset      int32
}

func (q *Queries) ListItemRequestsExcluding(ctx context.Context, db DBTX, arg ListItemRequestsExcludingParams) ([]ItemRequests, error) {
	rows, err := db.Query(ctx, listItemRequestsExcluding, arg.RequesterID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectItemRequests(rows)
}

func scanItemRequest(row pgx.Row) (ItemRequests, error) {
	var r ItemRequests
	err := row.Scan(&r.ID, &r.RequesterID, &r.Description, &r.CreatedAt)
	return r, err
}

func collectItemRequests(rows pgx.Rows) ([]ItemRequests, error) {
	defer rows.Close()

	out := []ItemRequests{}
	for rows.Next() {
		r, err := scanItemRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
