package item

import (
	"time"

	"shareit/internal/pkg/patch"

	"github.com/google/uuid"
)

type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	requestID   *uuid.UUID
	name        string
	description string
	available   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID, now time.Time) (*Item, error) {
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	d, err := normalizeDescription(description)
	if err != nil {
		return nil, err
	}
	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		requestID:   requestID,
		name:        n,
		description: d,
		available:   available,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructItem(id, ownerID uuid.UUID, requestID *uuid.UUID, name, description string, available bool, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		requestID:   requestID,
		name:        name,
		description: description,
		available:   available,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Patch fields left nil (or blank, for text) keep their current value.
type Patch struct {
	Name        *string
	Description *string
	Available   *bool
}

func (it *Item) ApplyPatch(p Patch, now time.Time) error {
	name, err := normalizeName(patch.CoalesceText(p.Name, it.name))
	if err != nil {
		return err
	}
	description, err := normalizeDescription(patch.CoalesceText(p.Description, it.description))
	if err != nil {
		return err
	}
	it.name = name
	it.description = description
	it.available = patch.Coalesce(p.Available, it.available)
	it.updatedAt = now
	return nil
}

func (it *Item) ID() uuid.UUID         { return it.id }
func (it *Item) OwnerID() uuid.UUID    { return it.ownerID }
func (it *Item) RequestID() *uuid.UUID { return it.requestID }
func (it *Item) Name() string          { return it.name }
func (it *Item) Description() string   { return it.description }
func (it *Item) Available() bool       { return it.available }
func (it *Item) CreatedAt() time.Time  { return it.createdAt }
func (it *Item) UpdatedAt() time.Time  { return it.updatedAt }
