package commands

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/policy"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/readmodel"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommentCommands interface {
	Add(ctx context.Context, authorID, itemID uuid.UUID, text string) (*readmodel.CommentView, error)
}

type commentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentCommands(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentCommandsImpl{uow: uow, clock: clk}
}

func (uc *commentCommandsImpl) Add(ctx context.Context, authorID, itemID uuid.UUID, text string) (*readmodel.CommentView, error) {
	var view *readmodel.CommentView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		author, err := tx.Users().FindByID(ctx, authorID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		if _, err = tx.Items().FindByID(ctx, itemID); err != nil {
			return shared.NotFoundAs(err, shared.ErrItemNotFound)
		}

		now := uc.clock.Now()
		completed, err := tx.Bookings().HasCompletedBooking(ctx, itemID, authorID, now)
		if err != nil {
			return err
		}
		if err = policy.RequireCompletedBooking(completed); err != nil {
			return err
		}

		c, err := comment.NewComment(itemID, authorID, text, now)
		if err != nil {
			return err
		}
		if err = tx.Comments().Create(ctx, c); err != nil {
			return err
		}
		view = &readmodel.CommentView{
			ID:         c.ID(),
			ItemID:     c.ItemID(),
			AuthorID:   c.AuthorID(),
			AuthorName: author.Name().Value(),
			Text:       c.Text().String(),
			CreatedAt:  c.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
