package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const itemColumns = `id, owner_id, request_id, name, description, available, created_at, updated_at`

const createItem = `
INSERT INTO items (` + itemColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateItemParams struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	RequestID   pgtype.UUID
	Name        string
	Description string
	Available   bool
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateItem(ctx context.Context, db DBTX, arg CreateItemParams) error {
	_, err := db.Exec(ctx, createItem,
		arg.ID, arg.OwnerID, arg.RequestID, arg.Name, arg.Description, arg.Available, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const updateItem = `
UPDATE items SET name = $2, description = $3, available = $4, updated_at = $5
WHERE id = $1
`

type UpdateItemParams struct {
	ID          uuid.UUID
	Name        string
	Description string
	Available   bool
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) UpdateItem(ctx context.Context, db DBTX, arg UpdateItemParams) (int64, error) {
	tag, err := db.Exec(ctx, updateItem, arg.ID, arg.Name, arg.Description, arg.Available, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getItemByID = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

func (q *Queries) GetItemByID(ctx context.Context, db DBTX, id uuid.UUID) (Items, error) {
	return scanItem(db.QueryRow(ctx, getItemByID, id))
}

const listItemsByOwner = `
SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY created_at, id
`

func (q *Queries) ListItemsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]Items, error) {
	rows, err := db.Query(ctx, listItemsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

const countItemsByOwner = `SELECT count(*) FROM items WHERE owner_id = $1`

func (q *Queries) CountItemsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countItemsByOwner, ownerID).Scan(&n)
	return n, err
}

// Only available items match; text is matched case-insensitively as a
// substring of name or description.
const searchAvailableItems = `
SELECT ` + itemColumns + ` FROM items
WHERE available
  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
ORDER BY created_at, id
`

func (q *Queries) SearchAvailableItems(ctx context.Context, db DBTX, text string) ([]Items, error) {
	rows, err := db.Query(ctx, searchAvailableItems, escapeLike(text))
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

const listItemsByRequestIDs = `
SELECT ` + itemColumns + ` FROM items WHERE request_id = ANY($1::uuid[]) ORDER BY created_at, id
`

func (q *Queries) ListItemsByRequestIDs(ctx context.Context, db DBTX, requestIDs []pgtype.UUID) ([]Items, error) {
	rows, err := db.Query(ctx, listItemsByRequestIDs, requestIDs)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

func scanItem(row pgx.Row) (Items, error) {
	var i Items
	err := row.Scan(&i.ID, &i.OwnerID, &i.RequestID, &i.Name, &i.Description, &i.Available, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func collectItems(rows pgx.Rows) ([]Items, error) {
	defer rows.Close()

	items := []Items{}
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
