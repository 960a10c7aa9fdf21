//go:build unit

package query_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra/query"

	"github.com/stretchr/testify/assert"
)

func TestBookingStateClause(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		state      string
		wantClause string
		wantArgs   []any
	}{
		{"ALL", "", nil},
		{"bogus", "", nil},
		{"current", " AND b.start_at <= $2 AND b.end_at >= $2", []any{now}},
		{"PAST", " AND b.end_at < $2", []any{now}},
		{"FUTURE", " AND b.start_at > $2", []any{now}},
		{"WAITING", " AND b.status = $2", []any{"WAITING"}},
		{"REJECTED", " AND b.status = $2", []any{"REJECTED"}},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			clause, args := query.BookingStateClause(booking.NewFilter(tt.state, now), 2)

			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
