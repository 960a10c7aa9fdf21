package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) error
	UpdateUser(ctx context.Context, db query.DBTX, arg query.UpdateUserParams) (int64, error)
	DeleteUser(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      query.DBTX
}

func NewUserRepository(queries UserWriteQueries, db query.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	err := r.queries.CreateUser(ctx, r.db, query.CreateUserParams{
		ID:        u.ID(),
		Name:      u.Name().Value(),
		Email:     u.Email().Value(),
		CreatedAt: pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	rows, err := r.queries.UpdateUser(ctx, r.db, query.UpdateUserParams{
		ID:        u.ID(),
		Name:      u.Name().Value(),
		Email:     u.Email().Value(),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete succeeds whether or not the user existed.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.queries.DeleteUser(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return user.ReconstructUser(
		row.ID,
		row.Name,
		row.Email,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
