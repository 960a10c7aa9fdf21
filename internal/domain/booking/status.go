package booking

import "shareit/internal/pkg/errs"

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var ErrUnknownStatus = errs.NewKind(errs.ErrValidation, "unknown booking status")

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsFinal reports whether no further transition is allowed.
func (s Status) IsFinal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ParseStatus is strict; it is used on persisted values only.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}
