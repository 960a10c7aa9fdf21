package booking

import (
	"strings"
	"time"
)

// State selects bookings for listing. Unlike Status it is never rejected:
// anything unrecognised is treated as StateAll.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func ParseState(s string) State {
	switch st := State(strings.ToUpper(strings.TrimSpace(s))); st {
	case StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return st
	default:
		return StateAll
	}
}

func (s State) String() string {
	return string(s)
}

// Filter pins a State to the instant it is evaluated at.
type Filter struct {
	State State
	Now   time.Time
}

func NewFilter(state string, now time.Time) Filter {
	return Filter{State: ParseState(state), Now: now}
}

// Matches must agree with the SQL predicate built in infra/query.
func (f Filter) Matches(start, end time.Time, status Status) bool {
	switch f.State {
	case StateCurrent:
		return !start.After(f.Now) && !end.Before(f.Now)
	case StatePast:
		return end.Before(f.Now)
	case StateFuture:
		return start.After(f.Now)
	case StateWaiting:
		return status == StatusWaiting
	case StateRejected:
		return status == StatusRejected
	default:
		return true
	}
}
