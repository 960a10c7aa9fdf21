package queries

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/policy"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// assembleDetails attaches bookings and comments to items as seen by viewerID.
// lastBooking is the approved booking that ended most recently and is shown
// to the owner only; nextBooking is the earliest upcoming booking that was
// not rejected.
func assembleDetails(
	viewerID uuid.UUID,
	now time.Time,
	items []*readmodel.ItemView,
	bookings []*readmodel.BookingView,
	comments []*readmodel.CommentView,
) []*readmodel.ItemDetailsView {
	bookingsByItem := make(map[uuid.UUID][]*readmodel.BookingView, len(items))
	for _, b := range bookings {
		bookingsByItem[b.Item.ID] = append(bookingsByItem[b.Item.ID], b)
	}
	commentsByItem := make(map[uuid.UUID][]*readmodel.CommentView, len(items))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	out := make([]*readmodel.ItemDetailsView, 0, len(items))
	for _, it := range items {
		d := &readmodel.ItemDetailsView{
			ItemView: *it,
			Comments: commentsByItem[it.ID],
		}
		if d.Comments == nil {
			d.Comments = []*readmodel.CommentView{}
		}
		last, next := lastAndNext(bookingsByItem[it.ID], now)
		if policy.CanSeeLastBooking(viewerID, it.OwnerID) {
			d.LastBooking = last
		}
		d.NextBooking = next
		out = append(out, d)
	}
	return out
}

// lastAndNext picks by end and start time rather than taking the first row of a
// start-descending list, and skips REJECTED bookings for next.
func lastAndNext(bookings []*readmodel.BookingView, now time.Time) (last, next *readmodel.BookingView) {
	for _, b := range bookings {
		status := booking.Status(b.Status)
		if status == booking.StatusApproved && b.End.Before(now) {
			if last == nil || b.End.After(last.End) {
				last = b
			}
		}
		if status != booking.StatusRejected && b.Start.After(now) {
			if next == nil || b.Start.Before(next.Start) {
				next = b
			}
		}
	}
	return last, next
}
