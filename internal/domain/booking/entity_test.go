//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/policy"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*builder.BookingBuilder)
		errIs  error
	}{
		{name: "future period", mutate: func(*builder.BookingBuilder) {}},
		{
			name:   "start in the past is accepted",
			mutate: func(b *builder.BookingBuilder) { b.WithPeriod(base.Add(-time.Hour), base.Add(time.Hour)) },
		},
		{
			name:   "item unavailable",
			mutate: func(b *builder.BookingBuilder) { b.ItemAvailable = false },
			errIs:  policy.ErrItemUnavailable,
		},
		{
			name:   "start equals end",
			mutate: func(b *builder.BookingBuilder) { b.WithPeriod(base, base) },
			errIs:  policy.ErrStartNotBeforeEnd,
		},
		{
			name:   "start after end",
			mutate: func(b *builder.BookingBuilder) { b.WithPeriod(base.Add(time.Hour), base) },
			errIs:  policy.ErrStartNotBeforeEnd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(tt.mutate).BuildDomain()

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.True(t, errs.IsValidation(err))
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusWaiting, actual.Status())
			assert.Equal(t, int32(1), actual.Version())
		})
	}
}

func TestBooking_Decide(t *testing.T) {
	tests := []struct {
		name       string
		from       booking.Status
		approve    bool
		wantStatus booking.Status
		errIs      error
	}{
		{name: "approve waiting", from: booking.StatusWaiting, approve: true, wantStatus: booking.StatusApproved},
		{name: "reject waiting", from: booking.StatusWaiting, approve: false, wantStatus: booking.StatusRejected},
		{name: "approve approved", from: booking.StatusApproved, approve: true, wantStatus: booking.StatusApproved, errIs: booking.ErrIllegalTransition},
		{name: "reject approved", from: booking.StatusApproved, approve: false, wantStatus: booking.StatusApproved, errIs: booking.ErrIllegalTransition},
		{name: "approve rejected", from: booking.StatusRejected, approve: true, wantStatus: booking.StatusRejected, errIs: booking.ErrIllegalTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(tt.from).BuildStored()

			err := b.Decide(tt.approve)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, b.Status())
			assert.Equal(t, int32(1), b.Version(), "version is bumped by the store, not the entity")
		})
	}
}

func TestBooking_IsCompletedBy(t *testing.T) {
	bb := builder.NewBookingBuilder()
	afterEnd := bb.End.Add(time.Minute)

	approved := bb.WithStatus(booking.StatusApproved).BuildStored()
	waiting := builder.NewBookingBuilder().WithBooker(bb.BookerID).BuildStored()

	assert.True(t, approved.IsCompletedBy(bb.BookerID, afterEnd))
	assert.False(t, approved.IsCompletedBy(bb.BookerID, bb.End), "end must be strictly in the past")
	assert.False(t, approved.IsCompletedBy(bb.ItemID, afterEnd), "other user")
	assert.False(t, waiting.IsCompletedBy(bb.BookerID, afterEnd), "not approved")
}
