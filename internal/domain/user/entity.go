package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id        uuid.UUID
	name      Name
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name, email string, now time.Time) (*User, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	return &User{
		id:        uuid.New(),
		name:      n,
		email:     e,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a persisted user without re-validating it.
func ReconstructUser(id uuid.UUID, name, email string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		name:      Name{value: name},
		email:     Email{value: email},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

type Patch struct {
	Name  *string
	Email *string
}

// ApplyPatch changes only the fields present in p.
func (u *User) ApplyPatch(p Patch, now time.Time) error {
	if p.Name != nil {
		n, err := NewName(*p.Name)
		if err != nil {
			return err
		}
		u.name = n
	}
	if p.Email != nil {
		e, err := NewEmail(*p.Email)
		if err != nil {
			return err
		}
		u.email = e
	}
	u.updatedAt = now
	return nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
