package repository

import (
	"context"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ItemRequestWriteQueries interface {
	CreateItemRequest(ctx context.Context, db query.DBTX, arg query.CreateItemRequestParams) error
	ItemRequestExists(ctx context.Context, db query.DBTX, id uuid.UUID) (bool, error)
}

type ItemRequestRepository struct {
	queries ItemRequestWriteQueries
	db      query.DBTX
}

func NewItemRequestRepository(queries ItemRequestWriteQueries, db query.DBTX) *ItemRequestRepository {
	return &ItemRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRequestRepository) Create(ctx context.Context, req *itemrequest.ItemRequest) error {
	err := r.queries.CreateItemRequest(ctx, r.db, query.CreateItemRequestParams{
		ID:          req.ID(),
		RequesterID: req.RequesterID(),
		Description: req.Description(),
		CreatedAt:   pgconv.TimeToPgtype(req.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create item request", err)
	}
	return nil
}

func (r *ItemRequestRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.ItemRequestExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check item request", err)
	}
	return ok, nil
}
