//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra/query"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Name  string
	Email string
	Now   time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:  "Alice",
		Email: "alice@example.com",
		Now:   time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(u.Name, u.Email, u.Now)
}

func (u *UserBuilder) BuildInfra() query.Users {
	ts := pgtype.Timestamptz{Time: u.Now, Valid: true}
	return query.Users{
		ID:        uuid.New(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func (u *UserBuilder) BuildReadModel() *readmodel.UserView {
	return &readmodel.UserView{
		ID:    uuid.New(),
		Name:  u.Name,
		Email: u.Email,
	}
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{Name: u.Name, Email: u.Email}
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}
