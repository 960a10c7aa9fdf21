//go:build unit

package policy_test

import (
	"testing"
	"time"

	"shareit/internal/domain/policy"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingParties(t *testing.T) {
	owner := uuid.New()
	booker := uuid.New()
	stranger := uuid.New()
	parties := policy.BookingParties{BookerID: booker, OwnerID: owner}

	tests := []struct {
		name        string
		actor       uuid.UUID
		wantDecide  bool
		wantView    bool
		decideErrIs error
		viewErrIs   error
	}{
		{name: "owner", actor: owner, wantDecide: true, wantView: true},
		{name: "booker", actor: booker, wantDecide: false, wantView: true, decideErrIs: policy.ErrOnlyOwnerCanDecide},
		{name: "stranger", actor: stranger, wantDecide: false, wantView: false, decideErrIs: policy.ErrOnlyOwnerCanDecide, viewErrIs: policy.ErrBookingAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDecide, policy.CanApproveOrReject(tt.actor, parties))
			assert.Equal(t, tt.wantView, policy.CanViewBooking(tt.actor, parties))

			decideErr := policy.RequireApprover(tt.actor, parties)
			viewErr := policy.RequireBookingViewer(tt.actor, parties)
			if tt.decideErrIs == nil {
				assert.NoError(t, decideErr)
			} else {
				require.ErrorIs(t, decideErr, tt.decideErrIs)
				assert.True(t, errs.IsAccessDenied(decideErr))
			}
			if tt.viewErrIs == nil {
				assert.NoError(t, viewErr)
			} else {
				require.ErrorIs(t, viewErr, tt.viewErrIs)
				assert.True(t, errs.IsAccessDenied(viewErr))
			}
		})
	}
}

func TestCanEditItem(t *testing.T) {
	owner := uuid.New()

	assert.True(t, policy.CanEditItem(owner, owner))
	assert.NoError(t, policy.RequireItemEditor(owner, owner))

	err := policy.RequireItemEditor(uuid.New(), owner)
	require.ErrorIs(t, err, policy.ErrOnlyOwnerCanEdit)
	assert.Equal(t, "only the owner may edit the item", err.Error())
}

func TestIsBookingCreatable(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		available bool
		end       time.Time
		errIs     error
	}{
		{name: "available with start before end", available: true, end: start.Add(time.Hour)},
		{name: "unavailable item", available: false, end: start.Add(time.Hour), errIs: policy.ErrItemUnavailable},
		{name: "start equals end", available: true, end: start, errIs: policy.ErrStartNotBeforeEnd},
		{name: "start after end", available: true, end: start.Add(-time.Minute), errIs: policy.ErrStartNotBeforeEnd},
		{name: "unavailable item checked first", available: false, end: start, errIs: policy.ErrItemUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.IsBookingCreatable(tt.available, start, tt.end)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestVisibilityAndComments(t *testing.T) {
	owner := uuid.New()

	assert.True(t, policy.CanSeeLastBooking(owner, owner))
	assert.False(t, policy.CanSeeLastBooking(uuid.New(), owner))

	assert.NoError(t, policy.RequireCompletedBooking(true))
	err := policy.RequireCompletedBooking(false)
	require.ErrorIs(t, err, policy.ErrNotCompletedRenter)
	assert.True(t, errs.IsValidation(err))
}
