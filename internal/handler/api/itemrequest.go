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

type ItemRequestHandler struct {
	cmds commands.ItemRequestCommands
	q    queries.ItemRequestQueries
}

func NewItemRequestHandler(cmds commands.ItemRequestCommands, q queries.ItemRequestQueries) *ItemRequestHandler {
	return &ItemRequestHandler{cmds: cmds, q: q}
}

// @Summary Create item request
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requester"
// @Param request body reqdto.CreateItemRequestRequest true "Create item request"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *ItemRequestHandler) Create(c *gin.Context) {
	requesterID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), requesterID, req.Description)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), requesterID, result.RequestID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/requests/"+result.RequestID.String())
	c.JSON(http.StatusCreated, resdto.FromItemRequestView(view))
}

// @Summary List own item requests
// @Description Newest first, each with the items offered for it
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Requester"
// @Success 200 {array} resdto.ItemRequestResponse
// @Router /requests [get]
func (h *ItemRequestHandler) ListOwn(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	views, err := h.q.ListOwn(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemRequestViews(views))
}

// @Summary List other users' item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param from query int false "Index of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Router /requests/all [get]
func (h *ItemRequestHandler) ListOthers(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.BindError(c, err)
		return
	}
	from, size := page.Values()
	views, err := h.q.ListOthers(c.Request.Context(), userID, from, size)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemRequestViews(views))
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *ItemRequestHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromItemRequestView(view))
}
