package commands

import (
	"context"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemRequestResult struct {
	RequestID uuid.UUID
}

type ItemRequestCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, description string) (*CreateItemRequestResult, error)
}

type itemRequestCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemRequestCommands(uow shared.UnitOfWork, clk clock.Clock) ItemRequestCommands {
	return &itemRequestCommandsImpl{uow: uow, clock: clk}
}

func (uc *itemRequestCommandsImpl) Create(ctx context.Context, requesterID uuid.UUID, description string) (*CreateItemRequestResult, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().FindByID(ctx, requesterID); err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		r, err := itemrequest.NewItemRequest(requesterID, description, uc.clock.Now())
		if err != nil {
			return err
		}
		if err = tx.ItemRequests().Create(ctx, r); err != nil {
			return err
		}
		createdID = r.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateItemRequestResult{RequestID: createdID}, nil
}
