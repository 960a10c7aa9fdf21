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

type ItemReadQueries interface {
	GetItemByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Items, error)
	ListItemsByOwner(ctx context.Context, db query.DBTX, ownerID uuid.UUID) ([]query.Items, error)
	CountItemsByOwner(ctx context.Context, db query.DBTX, ownerID uuid.UUID) (int64, error)
	SearchAvailableItems(ctx context.Context, db query.DBTX, text string) ([]query.Items, error)
	ListItemsByRequestIDs(ctx context.Context, db query.DBTX, requestIDs []pgtype.UUID) ([]query.Items, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      query.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db query.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ItemView, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return toItemView(row), nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*readmodel.ItemView, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	n, err := r.queries.CountItemsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count items by owner", err)
	}
	return n, nil
}

func (r *ItemReadStore) Search(ctx context.Context, text string) ([]*readmodel.ItemView, error) {
	rows, err := r.queries.SearchAvailableItems(ctx, r.db, text)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) ListByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*readmodel.ItemView, error) {
	rows, err := r.queries.ListItemsByRequestIDs(ctx, r.db, pgconv.UUIDsToPgArray(requestIDs))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by request", err)
	}
	return toItemViews(rows), nil
}
