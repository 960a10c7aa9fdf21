package commands

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/domain/policy"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type CreateItemResult struct {
	ItemID uuid.UUID
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (*CreateItemResult, error)
	Update(ctx context.Context, actorID, itemID uuid.UUID, in UpdateItemInput) error
}

type itemCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemCommands(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{uow: uow, clock: clk}
}

func (uc *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (*CreateItemResult, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().FindByID(ctx, ownerID); err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		if in.RequestID != nil {
			exists, err := tx.ItemRequests().Exists(ctx, *in.RequestID)
			if err != nil {
				return err
			}
			if !exists {
				return shared.ErrItemRequestNotFound
			}
		}

		it, err := item.NewItem(ownerID, in.Name, in.Description, in.Available, in.RequestID, uc.clock.Now())
		if err != nil {
			return err
		}
		if err = tx.Items().Create(ctx, it); err != nil {
			return err
		}
		createdID = it.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateItemResult{ItemID: createdID}, nil
}

func (uc *itemCommandsImpl) Update(ctx context.Context, actorID, itemID uuid.UUID, in UpdateItemInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Items().FindByID(ctx, itemID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrItemNotFound)
		}
		if err = policy.RequireItemEditor(actorID, it.OwnerID()); err != nil {
			return err
		}

		p := item.Patch{Name: in.Name, Description: in.Description, Available: in.Available}
		if err = it.ApplyPatch(p, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Items().Update(ctx, it)
	})
}
