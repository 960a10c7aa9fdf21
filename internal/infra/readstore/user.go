package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error)
	ListUsers(ctx context.Context, db query.DBTX) ([]query.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*readmodel.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	out := make([]*readmodel.UserView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toUserView(row))
	}
	return out, nil
}
