//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/dto/request"
	"shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/tests/common/builder"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	usersURL       = "/users"
	itemsURL       = "/items"
	itemURL        = "/items/%s"
	commentURL     = "/items/%s/comment"
	bookingsURL    = "/bookings"
	bookingURL     = "/bookings/%s"
	decideURL      = "/bookings/%s?approved=%t"
	ownerStatesURL = "/bookings/owner?state=%s"
)

type BookingFlowSuite struct {
	e2e.SharedSuite
}

func (s *BookingFlowSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingFlowSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingFlowSuite))
}

func (s *BookingFlowSuite) createUser(t *testing.T, name, email string) uuid.UUID {
	t.Helper()

	body := builder.NewUserBuilder().WithName(name).WithEmail(email).BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, body, "")
	var res response.UserResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEqual(t, uuid.Nil, res.ID)
	return res.ID
}

func (s *BookingFlowSuite) createItem(t *testing.T, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	body := builder.NewItemBuilder().WithName(name).BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, body, ownerID.String())
	var res response.ItemResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res.ID
}

func (s *BookingFlowSuite) TestBookingLifecycle() {
	s.Run("Normal case: booker books, owner approves, both can view", func() {
		t := s.T()

		ownerID := s.createUser(t, "Owner", "owner@example.com")
		bookerID := s.createUser(t, "Booker", "booker@example.com")
		itemID := s.createItem(t, ownerID, "Drill")

		start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
		end := start.Add(24 * time.Hour)
		body := request.CreateBookingRequest{ItemID: itemID, Start: start, End: end}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, bookerID.String())
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &created)
		require.Equal(t, "WAITING", created.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(decideURL, created.ID, true), nil, ownerID.String())
		var approved response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)

		expected := response.BookingResponse{
			ID:     created.ID,
			Start:  start,
			End:    end,
			Status: "APPROVED",
			Item:   response.ItemResponse{ID: itemID, Name: "Drill", Available: true},
			Booker: response.UserResponse{ID: bookerID, Name: "Booker", Email: "booker@example.com"},
		}
		opts := cmpopts.IgnoreFields(response.ItemResponse{}, "Description")
		if diff := cmp.Diff(expected, approved, opts); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}

		for _, viewer := range []uuid.UUID{ownerID, bookerID} {
			w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.ID), nil, viewer.String())
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}
	})

	s.Run("Error case: deciding twice is rejected", func() {
		t := s.T()

		ownerID := s.createUser(t, "Owner", "owner@example.com")
		bookerID := s.createUser(t, "Booker", "booker@example.com")
		itemID := s.createItem(t, ownerID, "Ladder")
		start := time.Now().Add(time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(time.Hour), "APPROVED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(decideURL, bookingID, false), nil, ownerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, httperr.KindValidation, "already decided")
	})

	s.Run("Error case: strangers cannot view or decide", func() {
		t := s.T()

		ownerID := s.createUser(t, "Owner", "owner@example.com")
		bookerID := s.createUser(t, "Booker", "booker@example.com")
		strangerID := s.createUser(t, "Stranger", "stranger@example.com")
		itemID := s.createItem(t, ownerID, "Tent")
		start := time.Now().Add(time.Hour)
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(time.Hour), "WAITING")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, bookingID), nil, strangerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, httperr.KindAccessDenied, "access denied")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(decideURL, bookingID, true), nil, bookerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, httperr.KindAccessDenied, "only the owner may confirm a booking")
	})

	s.Run("Error case: owner without items gets not found", func() {
		t := s.T()

		userID := s.createUser(t, "Nobody", "nobody@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ownerStatesURL, "ALL"), nil, userID.String())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, httperr.KindNotFound, "no items, access denied")
	})
}

func (s *BookingFlowSuite) TestCommentAfterRental() {
	s.Run("Error case: comment before the rental ends is rejected", func() {
		t := s.T()

		ownerID := s.createUser(t, "Owner", "owner@example.com")
		bookerID := s.createUser(t, "Booker", "booker@example.com")
		itemID := s.createItem(t, ownerID, "Kayak")
		start := time.Now().Add(24 * time.Hour)
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, start, start.Add(24*time.Hour), "APPROVED")

		body := request.CreateCommentRequest{Text: "Great kayak"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(commentURL, itemID), body, bookerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, httperr.KindValidation, "completed a booking")
	})

	s.Run("Normal case: comment after the rental ends appears in item details", func() {
		t := s.T()

		ownerID := s.createUser(t, "Owner", "owner@example.com")
		bookerID := s.createUser(t, "Booker", "booker@example.com")
		itemID := s.createItem(t, ownerID, "Kayak")
		end := time.Now().Add(-time.Hour)
		pastID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, end.Add(-24*time.Hour), end, "APPROVED")
		nextStart := time.Now().Add(48 * time.Hour)
		nextID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID, nextStart, nextStart.Add(time.Hour), "WAITING")

		body := request.CreateCommentRequest{Text: "Great kayak"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(commentURL, itemID), body, bookerID.String())
		var comment response.CommentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &comment)
		require.Equal(t, "Booker", comment.AuthorName)
		require.False(t, comment.Created.After(time.Now()))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(itemURL, itemID), nil, ownerID.String())
		var details response.ItemDetailsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &details)
		require.NotNil(t, details.LastBooking)
		require.Equal(t, pastID, details.LastBooking.ID)
		require.NotNil(t, details.NextBooking)
		require.Equal(t, nextID, details.NextBooking.ID)
		require.Len(t, details.Comments, 1)
		require.Equal(t, "Great kayak", details.Comments[0].Text)

		// the last booking is shown to the owner only
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(itemURL, itemID), nil, bookerID.String())
		details = response.ItemDetailsResponse{}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &details)
		require.Nil(t, details.LastBooking)
		require.NotNil(t, details.NextBooking)
	})
}
