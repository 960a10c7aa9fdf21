package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db query.DBTX, arg query.CreateItemParams) error
	UpdateItem(ctx context.Context, db query.DBTX, arg query.UpdateItemParams) (int64, error)
	GetItemByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Items, error)
}

type ItemRepository struct {
	queries ItemWriteQueries
	db      query.DBTX
}

func NewItemRepository(queries ItemWriteQueries, db query.DBTX) *ItemRepository {
	return &ItemRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	err := r.queries.CreateItem(ctx, r.db, query.CreateItemParams{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		RequestID:   pgconv.UUIDPtrToPgtype(it.RequestID()),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		CreatedAt:   pgconv.TimeToPgtype(it.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(it.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	rows, err := r.queries.UpdateItem(ctx, r.db, query.UpdateItemParams{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		UpdatedAt:   pgconv.TimeToPgtype(it.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return item.ReconstructItem(
		row.ID,
		row.OwnerID,
		pgconv.UUIDPtrFromPgtype(row.RequestID),
		row.Name,
		row.Description,
		row.Available,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
