//go:build unit

package readstore

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/infra/query"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Users), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, db query.DBTX) ([]query.Users, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]query.Users), args.Error(1)
}

func TestUserReadStoreFindByID(t *testing.T) {
	row := builder.NewUserBuilder().BuildInfra()

	tests := []struct {
		name       string
		mockReturn query.Users
		mockError  error
		wantUser   bool
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success", mockReturn: row, wantUser: true},
		{name: "user not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			got, err := store.FindByID(context.Background(), row.ID)

			if tt.wantUser {
				require.NoError(t, err)
				assert.Equal(t, row.ID, got.ID)
				assert.Equal(t, row.Name, got.Name)
				assert.Equal(t, row.Email, got.Email)
			} else {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserReadStoreList(t *testing.T) {
	t.Run("keeps query order", func(t *testing.T) {
		first := builder.NewUserBuilder().WithEmail("a@example.com").BuildInfra()
		second := builder.NewUserBuilder().WithEmail("b@example.com").BuildInfra()

		mockQueries := new(MockUserReadQueries)
		mockQueries.On("ListUsers", mock.Anything, mock.Anything).Return([]query.Users{first, second}, nil)

		got, err := NewUserReadStore(mockQueries, nil).List(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a@example.com", got[0].Email)
		assert.Equal(t, "b@example.com", got[1].Email)
		mockQueries.AssertExpectations(t)
	})

	t.Run("empty table", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("ListUsers", mock.Anything, mock.Anything).Return([]query.Users{}, nil)

		got, err := NewUserReadStore(mockQueries, nil).List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
