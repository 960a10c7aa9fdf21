package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createUser = `
INSERT INTO users (id, name, email, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
`

type CreateUserParams struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := db.Exec(ctx, createUser, arg.ID, arg.Name, arg.Email, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const updateUser = `
UPDATE users SET name = $2, email = $3, updated_at = $4
WHERE id = $1
`

type UpdateUserParams struct {
	ID        uuid.UUID
	Name      string
	Email     string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateUser(ctx context.Context, db DBTX, arg UpdateUserParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUser, arg.ID, arg.Name, arg.Email, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteUser = `DELETE FROM users WHERE id = $1`

func (q *Queries) DeleteUser(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteUser, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getUserByID = `
SELECT id, name, email, created_at, updated_at FROM users WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	var u Users
	err := db.QueryRow(ctx, getUserByID, id).Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const listUsers = `
SELECT id, name, email, created_at, updated_at FROM users ORDER BY created_at, id
`

func (q *Queries) ListUsers(ctx context.Context, db DBTX) ([]Users, error) {
	rows, err := db.Query(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Users{}
	for rows.Next() {
		var u Users
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}
