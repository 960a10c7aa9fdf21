//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/user"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/ptr"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func emailOfLength(n int) string {
	const domain = "@example.com"
	return strings.Repeat("a", n-len(domain)) + domain
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Alice", actual.Name().Value())
		assert.Equal(t, "alice@example.com", actual.Email().Value())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "missing at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("alice.example.com") }, errIs: user.ErrInvalidEmail},
			{name: "missing domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("alice@") }, errIs: user.ErrInvalidEmail},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "subdomain", mutate: func(b *builder.UserBuilder) { b.WithEmail("bob@mail.example.org") }},
			{name: "max length", mutate: func(b *builder.UserBuilder) { b.WithEmail(emailOfLength(user.MaxEmailLength)) }},
			{name: "too long", mutate: func(b *builder.UserBuilder) { b.WithEmail(emailOfLength(user.MaxEmailLength + 1)) }, errIs: user.ErrEmailTooLong},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank", mutate: func(b *builder.UserBuilder) { b.WithName("   ") }, errIs: user.ErrEmptyName},
			{name: "max length", mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength)) }},
			{name: "too long", mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength+1)) }, errIs: user.ErrNameTooLong},
		})
	})

	t.Run("validation errors are marked", func(t *testing.T) {
		_, err := builder.NewUserBuilder().WithEmail("nope").BuildDomain()
		assert.True(t, errs.IsValidation(err))
	})
}

func TestUser_ApplyPatch(t *testing.T) {
	later := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("only present fields change", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, u.ApplyPatch(user.Patch{Name: ptr.Of("Alicia")}, later))

		assert.Equal(t, "Alicia", u.Name().Value())
		assert.Equal(t, "alice@example.com", u.Email().Value())
		assert.Equal(t, later, u.UpdatedAt())
	})

	t.Run("invalid email leaves user untouched", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		err = u.ApplyPatch(user.Patch{Email: ptr.Of("broken")}, later)

		require.ErrorIs(t, err, user.ErrInvalidEmail)
		assert.Equal(t, "alice@example.com", u.Email().Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
