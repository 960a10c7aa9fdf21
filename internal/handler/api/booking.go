package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Booker"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), bookerID, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), bookerID, result.BookingID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Approve or reject booking
// @Description Item owner only; the booking must be WAITING
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Item owner"
// @Param id path string true "Booking ID"
// @Param approved query bool true "Approve (true) or reject (false)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.ApprovalQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}
	if err := h.cmds.Decide(c.Request.Context(), ownerID, id, *q.Approved); err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Visible to the booker and the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Booker"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Success 200 {array} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	bookerID, ok := actorID(c)
	if !ok {
		return
	}
	var q reqdto.BookingStateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}
	views, err := h.q.ListByBooker(c.Request.Context(), bookerID, q.State)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List bookings of own items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Item owner"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Success 200 {array} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	var q reqdto.BookingStateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID, q.State)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
