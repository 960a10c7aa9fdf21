// Package policy holds the authorization and booking rules. Every function is
// pure: callers resolve ownership facts from the store and pass ids in.
package policy

import (
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOnlyOwnerCanDecide  = errs.NewKind(errs.ErrAccessDenied, "only the owner may confirm a booking")
	ErrBookingAccessDenied = errs.NewKind(errs.ErrAccessDenied, "access denied")
	ErrOnlyOwnerCanEdit    = errs.NewKind(errs.ErrAccessDenied, "only the owner may edit the item")
	ErrItemUnavailable     = errs.NewKind(errs.ErrValidation, "item unavailable for booking")
	ErrStartNotBeforeEnd   = errs.NewKind(errs.ErrValidation, "start must precede end")
	ErrNotCompletedRenter  = errs.NewKind(errs.ErrValidation, "only a renter who completed a booking may comment")
)

// BookingParties are the two users related to a booking.
type BookingParties struct {
	BookerID uuid.UUID
	OwnerID  uuid.UUID
}

func CanApproveOrReject(actorID uuid.UUID, p BookingParties) bool {
	return actorID == p.OwnerID
}

func CanViewBooking(actorID uuid.UUID, p BookingParties) bool {
	return actorID == p.BookerID || actorID == p.OwnerID
}

func CanEditItem(actorID, ownerID uuid.UUID) bool {
	return actorID == ownerID
}

// CanSeeLastBooking reports whether the past booking of an item is shown to viewerID.
func CanSeeLastBooking(viewerID, ownerID uuid.UUID) bool {
	return viewerID == ownerID
}

func IsBookingCreatable(available bool, start, end time.Time) error {
	if !available {
		return ErrItemUnavailable
	}
	if !start.Before(end) {
		return ErrStartNotBeforeEnd
	}
	return nil
}

func RequireApprover(actorID uuid.UUID, p BookingParties) error {
	if !CanApproveOrReject(actorID, p) {
		return ErrOnlyOwnerCanDecide
	}
	return nil
}

func RequireBookingViewer(actorID uuid.UUID, p BookingParties) error {
	if !CanViewBooking(actorID, p) {
		return ErrBookingAccessDenied
	}
	return nil
}

func RequireItemEditor(actorID, ownerID uuid.UUID) error {
	if !CanEditItem(actorID, ownerID) {
		return ErrOnlyOwnerCanEdit
	}
	return nil
}

// RequireCompletedBooking gates comments on a finished, approved rental.
func RequireCompletedBooking(hasCompleted bool) error {
	if !hasCompleted {
		return ErrNotCompletedRenter
	}
	return nil
}
