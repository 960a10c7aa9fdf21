//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/policy"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCommands_Add(t *testing.T) {
	ctx := context.Background()
	pastStart := baseTime.Add(-48 * time.Hour)
	pastEnd := baseTime.Add(-24 * time.Hour)

	t.Run("renter with a finished approved booking", func(t *testing.T) {
		f := newFixture()
		owner := f.seedUser(t, "Alice", "alice@example.com")
		booker := f.seedUser(t, "Bob", "bob@example.com")
		it := f.seedItem(t, owner, nil)
		f.seedBooking(t, it, booker, pastStart, pastEnd, booking.StatusApproved)
		uc := commands.NewCommentCommands(f.store, f.clock)

		view, err := uc.Add(ctx, booker.ID(), it.ID(), "  Great drill ")

		require.NoError(t, err)
		assert.Equal(t, "Great drill", view.Text)
		assert.Equal(t, "Bob", view.AuthorName)
		assert.Equal(t, baseTime, view.CreatedAt)
		assert.Equal(t, 1, f.store.CommentCount())
	})

	rejectCases := []struct {
		name   string
		start  time.Time
		end    time.Time
		status booking.Status
	}{
		{name: "booking not approved", start: pastStart, end: pastEnd, status: booking.StatusWaiting},
		{name: "booking rejected", start: pastStart, end: pastEnd, status: booking.StatusRejected},
		{name: "booking still running", start: pastStart, end: baseTime.Add(time.Hour), status: booking.StatusApproved},
	}
	for _, tc := range rejectCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			owner := f.seedUser(t, "Alice", "alice@example.com")
			booker := f.seedUser(t, "Bob", "bob@example.com")
			it := f.seedItem(t, owner, nil)
			f.seedBooking(t, it, booker, tc.start, tc.end, tc.status)
			uc := commands.NewCommentCommands(f.store, f.clock)

			_, err := uc.Add(ctx, booker.ID(), it.ID(), "nice")

			require.ErrorIs(t, err, policy.ErrNotCompletedRenter)
			assert.Zero(t, f.store.CommentCount())
		})
	}

	t.Run("empty text after completed booking", func(t *testing.T) {
		f := newFixture()
		owner := f.seedUser(t, "Alice", "alice@example.com")
		booker := f.seedUser(t, "Bob", "bob@example.com")
		it := f.seedItem(t, owner, nil)
		f.seedBooking(t, it, booker, pastStart, pastEnd, booking.StatusApproved)
		uc := commands.NewCommentCommands(f.store, f.clock)

		_, err := uc.Add(ctx, booker.ID(), it.ID(), "   ")

		require.ErrorIs(t, err, comment.ErrEmptyText)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newFixture()
		booker := f.seedUser(t, "Bob", "bob@example.com")
		uc := commands.NewCommentCommands(f.store, f.clock)

		_, err := uc.Add(ctx, booker.ID(), uuid.New(), "nice")

		require.ErrorIs(t, err, shared.ErrItemNotFound)
	})
}
