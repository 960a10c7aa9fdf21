package commands

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateUserInput struct {
	Name  string
	Email string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type CreateUserResult struct {
	UserID uuid.UUID
}

type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput) (*CreateUserResult, error)
	Update(ctx context.Context, userID uuid.UUID, in UpdateUserInput) error
	// Delete is idempotent; owned items, bookings, requests and comments go with the user.
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (uc *userCommandsImpl) Create(ctx context.Context, in CreateUserInput) (*CreateUserResult, error) {
	u, err := user.NewUser(in.Name, in.Email, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return emailConflictAs(tx.Users().Create(ctx, u))
	})
	if err != nil {
		return nil, err
	}
	return &CreateUserResult{UserID: u.ID()}, nil
}

func (uc *userCommandsImpl) Update(ctx context.Context, userID uuid.UUID, in UpdateUserInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		if err = u.ApplyPatch(user.Patch{Name: in.Name, Email: in.Email}, uc.clock.Now()); err != nil {
			return err
		}
		return emailConflictAs(tx.Users().Update(ctx, u))
	})
}

func (uc *userCommandsImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, userID)
	})
}

// users.email is the only unique column written through this use case.
func emailConflictAs(err error) error {
	if err != nil && errs.IsConflict(err) {
		return shared.ErrEmailTaken
	}
	return err
}
