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

type ItemHandler struct {
	cmds     commands.ItemCommands
	comments commands.CommentCommands
	q        queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, comments commands.CommentCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, comments: comments, q: q}
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ItemID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Owner-only partial update
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), userID, id, req.ToInput()); err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Get item with bookings and comments
// @Description lastBooking is only filled for the owner
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemDetailsResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	viewerID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetDetails(c.Request.Context(), viewerID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailsView(view))
}

// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Success 200 {array} resdto.ItemDetailsResponse
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailsViews(views))
}

// @Summary Search available items
// @Description Blank text returns an empty list
// @Tags items
// @Produce json
// @Param text query string false "Search text"
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	var q reqdto.SearchItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}
	views, err := h.q.Search(c.Request.Context(), q.Text)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Comment on an item
// @Description Only a booker with a finished approved booking may comment
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user"
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}
	view, err := h.comments.Add(c.Request.Context(), authorID, id, req.Text)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommentView(view))
}
