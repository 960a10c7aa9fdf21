package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/usecase/readmodel"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemRequestReadQueries interface {
	GetItemRequestByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ItemRequests, error)
	ListItemRequestsByRequester(ctx context.Context, db query.DBTX, requesterID uuid.UUID) ([]query.ItemRequests, error)
	ListItemRequestsExcluding(ctx context.Context, db query.DBTX, arg query.ListItemRequestsExcludingParams) ([]query.ItemRequests, error)
}

type ItemRequestReadStore struct {
	queries ItemRequestReadQueries
	db      query.DBTX
}

func NewItemRequestReadStore(queries ItemRequestReadQueries, db query.DBTX) *ItemRequestReadStore {
	return &ItemRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ItemRequestView, error) {
	row, err := r.queries.GetItemRequestByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item request by ID", err)
	}
	return toItemRequestView(row), nil
}

func (r *ItemRequestReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*readmodel.ItemRequestView, error) {
	rows, err := r.queries.ListItemRequestsByRequester(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	return toItemRequestViews(rows), nil
}

func (r *ItemRequestReadStore) ListOthers(ctx context.Context, requesterID uuid.UUID, page shared.Page) ([]*readmodel.ItemRequestView, error) {
	rows, err := r.queries.ListItemRequestsExcluding(ctx, r.db, query.ListItemRequestsExcludingParams{
		RequesterID: requesterID,
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests of others", err)
	}
	return toItemRequestViews(rows), nil
}
