//go:build unit

package repository

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/builder"
	repositorymock "shareit/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepositoryCreate(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
		wantIs    error
	}{
		{name: "success"},
		{
			name:      "duplicate email",
			mockError: &pgconn.PgError{Code: "23505"},
			wantKind:  infra.KindDuplicateKey,
			wantIs:    errs.ErrConflict,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockUserWriteQueries(ctrl)

			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			q.EXPECT().
				CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreateUserParams) error {
					assert.Equal(t, u.ID(), arg.ID)
					assert.Equal(t, "alice@example.com", arg.Email)
					assert.True(t, arg.CreatedAt.Valid)
					return tt.mockError
				})

			err = NewUserRepository(q, nil).Create(context.Background(), u)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
			if tt.wantIs != nil {
				assert.True(t, errs.Is(err, tt.wantIs))
			}
		})
	}
}

func TestUserRepositoryUpdate(t *testing.T) {
	tests := []struct {
		name      string
		rows      int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "no such user", rows: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockUserWriteQueries(ctrl)

			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			q.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.rows, tt.mockError)

			err = NewUserRepository(q, nil).Update(context.Background(), u)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
			if tt.wantKind == infra.KindNotFound {
				assert.True(t, errs.IsNotFound(err))
			}
		})
	}
}

func TestUserRepositoryDeleteIgnoresMissingRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockUserWriteQueries(ctrl)

	id := uuid.New()
	q.EXPECT().DeleteUser(gomock.Any(), gomock.Any(), id).Return(int64(0), nil)

	assert.NoError(t, NewUserRepository(q, nil).Delete(context.Background(), id))
}

func TestUserRepositoryFindByID(t *testing.T) {
	row := builder.NewUserBuilder().BuildInfra()

	tests := []struct {
		name      string
		mockRow   query.Users
		mockError error
		wantUser  bool
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockRow: row, wantUser: true},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockUserWriteQueries(ctrl)

			q.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), row.ID).Return(tt.mockRow, tt.mockError)

			got, err := NewUserRepository(q, nil).FindByID(context.Background(), row.ID)

			if !tt.wantUser {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, got.ID())
			assert.Equal(t, row.Name, got.Name().Value())
			assert.Equal(t, row.Email, got.Email().Value())
		})
	}
}
