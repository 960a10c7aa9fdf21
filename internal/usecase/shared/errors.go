package shared

import "shareit/internal/pkg/errs"

var (
	ErrUserNotFound        = errs.NewKind(errs.ErrNotFound, "user not found")
	ErrItemNotFound        = errs.NewKind(errs.ErrNotFound, "item not found")
	ErrBookingNotFound     = errs.NewKind(errs.ErrNotFound, "booking not found")
	ErrItemRequestNotFound = errs.NewKind(errs.ErrNotFound, "item request not found")
	ErrOwnerHasNoItems     = errs.NewKind(errs.ErrNotFound, "no items, access denied")
	ErrEmailTaken          = errs.NewKind(errs.ErrConflict, "email already in use")
)

// NotFoundAs replaces a store-level not-found error with target and passes
// any other error through unchanged.
func NotFoundAs(err, target error) error {
	if err != nil && errs.IsNotFound(err) {
		return target
	}
	return err
}
