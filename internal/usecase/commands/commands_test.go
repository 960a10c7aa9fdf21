//go:build unit

package commands_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/pkg/clock"
	"shareit/tests/common/builder"
	"shareit/tests/common/fakestore"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store *fakestore.Store
	clock *clock.MockClock
}

func newFixture() *fixture {
	return &fixture{
		store: fakestore.New(),
		clock: clock.NewMockClock(baseTime),
	}
}

func (f *fixture) seedUser(t *testing.T, name, email string) *user.User {
	t.Helper()
	u, err := builder.NewUserBuilder().WithName(name).WithEmail(email).BuildDomain()
	require.NoError(t, err)
	f.store.SeedUser(u)
	return u
}

func (f *fixture) seedItem(t *testing.T, owner *user.User, mutate func(*builder.ItemBuilder)) *item.Item {
	t.Helper()
	b := builder.NewItemBuilder().WithOwner(owner.ID())
	if mutate != nil {
		b.With(mutate)
	}
	it, err := b.BuildDomain()
	require.NoError(t, err)
	f.store.SeedItem(it)
	return it
}

func (f *fixture) seedBooking(t *testing.T, it *item.Item, booker *user.User, start, end time.Time, status booking.Status) *booking.Booking {
	t.Helper()
	b := builder.NewBookingBuilder().
		WithItem(it.ID()).
		WithBooker(booker.ID()).
		WithPeriod(start, end).
		WithStatus(status).
		BuildStored()
	f.store.SeedBooking(b)
	return b
}
