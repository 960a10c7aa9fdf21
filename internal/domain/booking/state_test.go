//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestParseState(t *testing.T) {
	assert.Equal(t, booking.StateCurrent, booking.ParseState(" current "))
	assert.Equal(t, booking.StateRejected, booking.ParseState("REJECTED"))
	assert.Equal(t, booking.StateAll, booking.ParseState(""))
	assert.Equal(t, booking.StateAll, booking.ParseState("UNSUPPORTED_STATUS"))
}

func TestParseStatus(t *testing.T) {
	s, err := booking.ParseStatus("APPROVED")
	assert.NoError(t, err)
	assert.Equal(t, booking.StatusApproved, s)

	_, err = booking.ParseStatus("approved")
	assert.ErrorIs(t, err, booking.ErrUnknownStatus)
}

func TestFilter_Matches(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	hour := time.Hour

	type period struct{ start, end time.Time }
	past := period{now.Add(-3 * hour), now.Add(-hour)}
	current := period{now.Add(-hour), now.Add(hour)}
	future := period{now.Add(hour), now.Add(3 * hour)}
	startsNow := period{now, now.Add(hour)}
	endsNow := period{now.Add(-hour), now}

	tests := []struct {
		state  string
		p      period
		status booking.Status
		want   bool
	}{
		{"ALL", past, booking.StatusRejected, true},
		{"CURRENT", current, booking.StatusApproved, true},
		{"CURRENT", startsNow, booking.StatusWaiting, true},
		{"CURRENT", endsNow, booking.StatusWaiting, true},
		{"CURRENT", past, booking.StatusApproved, false},
		{"CURRENT", future, booking.StatusApproved, false},
		{"PAST", past, booking.StatusApproved, true},
		{"PAST", endsNow, booking.StatusApproved, false},
		{"FUTURE", future, booking.StatusWaiting, true},
		{"FUTURE", startsNow, booking.StatusWaiting, false},
		{"WAITING", past, booking.StatusWaiting, true},
		{"WAITING", future, booking.StatusApproved, false},
		{"REJECTED", current, booking.StatusRejected, true},
		{"REJECTED", current, booking.StatusWaiting, false},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			f := booking.NewFilter(tt.state, now)
			assert.Equal(t, tt.want, f.Matches(tt.p.start, tt.p.end, tt.status))
		})
	}
}
