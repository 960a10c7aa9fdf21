//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/whoami", middleware.RequireSharerUserID(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	return r
}

func TestRequireSharerUserID(t *testing.T) {
	r := newEngine()

	t.Run("valid header is exposed to handlers", func(t *testing.T) {
		id := uuid.New()
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, id.String())

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, id.String(), body["id"])
	})

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, httperr.KindValidation, "missing "+middleware.HeaderUserID)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "user-1")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, httperr.KindValidation, "invalid "+middleware.HeaderUserID)
	})
}

func TestCustomRecovery(t *testing.T) {
	r := newEngine()

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
}
