//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/policy"
	"shareit/internal/domain/user"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/readmodel"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"
	"shareit/tests/common/fakestore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type world struct {
	store  *fakestore.Store
	clock  *clock.MockClock
	owner  *user.User
	booker *user.User
	drill  *item.Item
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{store: fakestore.New(), clock: clock.NewMockClock(now)}

	var err error
	w.owner, err = builder.NewUserBuilder().WithName("Alice").WithEmail("alice@example.com").BuildDomain()
	require.NoError(t, err)
	w.booker, err = builder.NewUserBuilder().WithName("Bob").WithEmail("bob@example.com").BuildDomain()
	require.NoError(t, err)
	w.store.SeedUser(w.owner)
	w.store.SeedUser(w.booker)

	w.drill, err = builder.NewItemBuilder().WithOwner(w.owner.ID()).BuildDomain()
	require.NoError(t, err)
	w.store.SeedItem(w.drill)
	return w
}

func (w *world) book(it *item.Item, booker *user.User, start, end time.Time, status booking.Status) *booking.Booking {
	b := builder.NewBookingBuilder().
		WithItem(it.ID()).
		WithBooker(booker.ID()).
		WithPeriod(start, end).
		WithStatus(status).
		BuildStored()
	w.store.SeedBooking(b)
	return b
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	stranger, err := builder.NewUserBuilder().WithEmail("eve@example.com").BuildDomain()
	require.NoError(t, err)
	w.store.SeedUser(stranger)
	b := w.book(w.drill, w.booker, now.Add(time.Hour), now.Add(2*time.Hour), booking.StatusWaiting)
	q := queries.NewBookingQueries(w.store, w.clock)

	for _, viewer := range []uuid.UUID{w.owner.ID(), w.booker.ID()} {
		view, err := q.GetByID(ctx, viewer, b.ID())
		require.NoError(t, err)
		assert.Equal(t, w.drill.ID(), view.Item.ID)
		assert.Equal(t, "Bob", view.Booker.Name)
	}

	_, err = q.GetByID(ctx, stranger.ID(), b.ID())
	require.ErrorIs(t, err, policy.ErrBookingAccessDenied)

	_, err = q.GetByID(ctx, w.owner.ID(), uuid.New())
	require.ErrorIs(t, err, shared.ErrBookingNotFound)
}

func TestBookingQueries_Lists(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	h := time.Hour
	past := w.book(w.drill, w.booker, now.Add(-5*h), now.Add(-4*h), booking.StatusApproved)
	current := w.book(w.drill, w.booker, now.Add(-h), now.Add(h), booking.StatusApproved)
	future := w.book(w.drill, w.booker, now.Add(4*h), now.Add(5*h), booking.StatusWaiting)
	rejected := w.book(w.drill, w.booker, now.Add(6*h), now.Add(7*h), booking.StatusRejected)
	q := queries.NewBookingQueries(w.store, w.clock)

	tests := []struct {
		state string
		want  []uuid.UUID
	}{
		{"ALL", []uuid.UUID{rejected.ID(), future.ID(), current.ID(), past.ID()}},
		{"", []uuid.UUID{rejected.ID(), future.ID(), current.ID(), past.ID()}},
		{"UNSUPPORTED_STATUS", []uuid.UUID{rejected.ID(), future.ID(), current.ID(), past.ID()}},
		{"CURRENT", []uuid.UUID{current.ID()}},
		{"PAST", []uuid.UUID{past.ID()}},
		{"FUTURE", []uuid.UUID{rejected.ID(), future.ID()}},
		{"WAITING", []uuid.UUID{future.ID()}},
		{"REJECTED", []uuid.UUID{rejected.ID()}},
	}

	for _, tt := range tests {
		t.Run("booker "+tt.state, func(t *testing.T) {
			views, err := q.ListByBooker(ctx, w.booker.ID(), tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, bookingIDs(views))
		})
		t.Run("owner "+tt.state, func(t *testing.T) {
			views, err := q.ListByOwner(ctx, w.owner.ID(), tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, bookingIDs(views))
		})
	}

	t.Run("owner without items", func(t *testing.T) {
		_, err := q.ListByOwner(ctx, w.booker.ID(), "ALL")
		require.ErrorIs(t, err, shared.ErrOwnerHasNoItems)
	})

	t.Run("unknown booker", func(t *testing.T) {
		_, err := q.ListByBooker(ctx, uuid.New(), "ALL")
		require.ErrorIs(t, err, shared.ErrUserNotFound)
	})
}

func TestItemQueries_GetDetails(t *testing.T) {
	ctx := context.Background()
	h := time.Hour
	w := newWorld(t)
	w.book(w.drill, w.booker, now.Add(-10*h), now.Add(-9*h), booking.StatusApproved)
	lastApproved := w.book(w.drill, w.booker, now.Add(-5*h), now.Add(-4*h), booking.StatusApproved)
	w.book(w.drill, w.booker, now.Add(-3*h), now.Add(-2*h), booking.StatusRejected)
	w.book(w.drill, w.booker, now.Add(2*h), now.Add(3*h), booking.StatusRejected)
	next := w.book(w.drill, w.booker, now.Add(4*h), now.Add(5*h), booking.StatusWaiting)
	w.book(w.drill, w.booker, now.Add(8*h), now.Add(9*h), booking.StatusApproved)

	first, err := comment.NewComment(w.drill.ID(), w.booker.ID(), "first", now.Add(-3*h))
	require.NoError(t, err)
	second, err := comment.NewComment(w.drill.ID(), w.booker.ID(), "second", now.Add(-2*h))
	require.NoError(t, err)
	w.store.SeedComment(first)
	w.store.SeedComment(second)

	q := queries.NewItemQueries(w.store, w.clock)

	t.Run("owner sees last and next", func(t *testing.T) {
		d, err := q.GetDetails(ctx, w.owner.ID(), w.drill.ID())
		require.NoError(t, err)

		require.NotNil(t, d.LastBooking)
		assert.Equal(t, lastApproved.ID(), d.LastBooking.ID)
		require.NotNil(t, d.NextBooking)
		assert.Equal(t, next.ID(), d.NextBooking.ID)
		require.Len(t, d.Comments, 2)
		assert.Equal(t, "first", d.Comments[0].Text)
		assert.Equal(t, "Bob", d.Comments[0].AuthorName)
	})

	t.Run("non-owner sees next only", func(t *testing.T) {
		d, err := q.GetDetails(ctx, w.booker.ID(), w.drill.ID())
		require.NoError(t, err)

		assert.Nil(t, d.LastBooking)
		require.NotNil(t, d.NextBooking)
		assert.Equal(t, next.ID(), d.NextBooking.ID)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := q.GetDetails(ctx, w.owner.ID(), uuid.New())
		require.ErrorIs(t, err, shared.ErrItemNotFound)
	})
}

func TestItemQueries_ListByOwner(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	q := queries.NewItemQueries(w.store, w.clock)

	items, err := q.ListByOwner(ctx, w.owner.ID())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, w.drill.ID(), items[0].ID)
	assert.NotNil(t, items[0].Comments)

	items, err = q.ListByOwner(ctx, w.booker.ID())
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = q.ListByOwner(ctx, uuid.New())
	require.ErrorIs(t, err, shared.ErrUserNotFound)
}

func TestItemQueries_Search(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	hidden, err := builder.NewItemBuilder().WithOwner(w.owner.ID()).WithName("Drill press").AsUnavailable().BuildDomain()
	require.NoError(t, err)
	w.store.SeedItem(hidden)
	saw, err := builder.NewItemBuilder().WithOwner(w.owner.ID()).WithName("Saw").WithDescription("Cuts wood, not a DRILL").BuildDomain()
	require.NoError(t, err)
	w.store.SeedItem(saw)
	q := queries.NewItemQueries(w.store, w.clock)

	tests := []struct {
		text string
		want []uuid.UUID
	}{
		{"dRiLl", []uuid.UUID{w.drill.ID(), saw.ID()}},
		{"wood", []uuid.UUID{saw.ID()}},
		{"press", []uuid.UUID{}},
		{"", []uuid.UUID{}},
		{"   ", []uuid.UUID{}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			views, err := q.Search(ctx, tt.text)
			require.NoError(t, err)

			ids := []uuid.UUID{}
			for _, v := range views {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestUserQueries(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	q := queries.NewUserQueries(w.store)

	all, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alice", all[0].Name)

	got, err := q.GetByID(ctx, w.booker.ID())
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Email)

	_, err = q.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, shared.ErrUserNotFound)
}

func TestItemRequestQueries(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)

	var ownRequests []*itemrequest.ItemRequest
	for i := 0; i < 3; i++ {
		r, err := itemrequest.NewItemRequest(w.booker.ID(), "need something", now.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		w.store.SeedItemRequest(r)
		ownRequests = append(ownRequests, r)
	}
	answer, err := builder.NewItemBuilder().WithOwner(w.owner.ID()).WithRequest(ownRequests[0].ID()).BuildDomain()
	require.NoError(t, err)
	w.store.SeedItem(answer)

	q := queries.NewItemRequestQueries(w.store)

	t.Run("own requests newest first with answers", func(t *testing.T) {
		views, err := q.ListOwn(ctx, w.booker.ID())
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, ownRequests[2].ID(), views[0].ID)
		assert.Empty(t, views[0].Items)
		require.Len(t, views[2].Items, 1)
		assert.Equal(t, answer.ID(), views[2].Items[0].ID)
	})

	t.Run("others are paged", func(t *testing.T) {
		views, err := q.ListOthers(ctx, w.owner.ID(), 0, 2)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, ownRequests[2].ID(), views[0].ID)

		views, err = q.ListOthers(ctx, w.owner.ID(), 3, 2)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, ownRequests[0].ID(), views[0].ID)
	})

	t.Run("own requests are not listed among others", func(t *testing.T) {
		views, err := q.ListOthers(ctx, w.booker.ID(), 0, 10)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("invalid page", func(t *testing.T) {
		_, err := q.ListOthers(ctx, w.owner.ID(), -1, 10)
		require.ErrorIs(t, err, shared.ErrInvalidPage)
		_, err = q.ListOthers(ctx, w.owner.ID(), 0, 0)
		require.ErrorIs(t, err, shared.ErrInvalidPage)
	})

	t.Run("single request by any user", func(t *testing.T) {
		v, err := q.GetByID(ctx, w.owner.ID(), ownRequests[0].ID())
		require.NoError(t, err)
		require.Len(t, v.Items, 1)

		_, err = q.GetByID(ctx, w.owner.ID(), uuid.New())
		require.ErrorIs(t, err, shared.ErrItemRequestNotFound)
	})
}

func bookingIDs(views []*readmodel.BookingView) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}
