package query

import (
	"strconv"

	"shareit/internal/domain/booking"
)

// BookingStateClause renders filter as an AND-prefixed predicate over the
// bookings alias b. Placeholders are numbered from next. It must select
// exactly the rows booking.Filter.Matches accepts.
func BookingStateClause(filter booking.Filter, next int) (string, []any) {
	p := "$" + strconv.Itoa(next)
	switch filter.State {
	case booking.StateCurrent:
		return ` AND b.start_at <= ` + p + ` AND b.end_at >= ` + p, []any{filter.Now}
	case booking.StatePast:
		return ` AND b.end_at < ` + p, []any{filter.Now}
	case booking.StateFuture:
		return ` AND b.start_at > ` + p, []any{filter.Now}
	case booking.StateWaiting:
		return ` AND b.status = ` + p, []any{booking.StatusWaiting.String()}
	case booking.StateRejected:
		return ` AND b.status = ` + p, []any{booking.StatusRejected.String()}
	default:
		return "", nil
	}
}
