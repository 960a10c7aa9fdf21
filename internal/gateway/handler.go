package gateway

import (
	"io"
	"log/slog"
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

const ctxBodyKey = "gateway_body"

var errInvalidID = errs.NewKind(errs.ErrValidation, "invalid id")

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// Proxy relays the request to the server and copies back status,
// Content-Type and body.
func (h *Handler) Proxy(c *gin.Context) {
	body, err := requestBody(c)
	if err != nil {
		httperr.BindError(c, err)
		return
	}

	resp, err := h.client.Forward(c.Request.Context(), UpstreamRequest{
		Method:   c.Request.Method,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
		Body:     body,
		UserID:   c.GetHeader(middleware.HeaderUserID),
	})
	if err != nil {
		metrics.IncUpstreamFailure()
		slog.Error("upstream call failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.KindInternal, err.Error())
		return
	}

	if resp.Location != "" {
		c.Header("Location", resp.Location)
	}
	if len(resp.Body) == 0 {
		c.Status(resp.Status)
		c.Writer.WriteHeaderNow()
		return
	}
	c.Data(resp.Status, resp.ContentType, resp.Body)
}

// ValidateJSON binds the body into T before proxying. The raw bytes are kept
// so the server receives the body unchanged.
func ValidateJSON[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			httperr.BindError(c, err)
			return
		}
		var dto T
		if err := binding.JSON.BindBody(raw, &dto); err != nil {
			httperr.BindError(c, err)
			return
		}
		c.Set(ctxBodyKey, raw)
		c.Next()
	}
}

func ValidateQuery[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto T
		if err := c.ShouldBindQuery(&dto); err != nil {
			httperr.BindError(c, err)
			return
		}
		c.Next()
	}
}

func ValidateID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := uuid.Parse(c.Param("id")); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), httperr.KindValidation, errs.Message(errInvalidID))
			return
		}
		c.Next()
	}
}

func requestBody(c *gin.Context) ([]byte, error) {
	if v, ok := c.Get(ctxBodyKey); ok {
		if raw, ok := v.([]byte); ok {
			return raw, nil
		}
	}
	if c.Request.Body == nil {
		return nil, nil
	}
	return io.ReadAll(c.Request.Body)
}
