package middleware

import (
	"net/http"
	"strings"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderUserID = "X-Sharer-User-Id"

	ctxUserIDKey = "user_id"
)

var (
	errMissingUserHeader = errs.NewKind(errs.ErrValidation, "missing "+HeaderUserID+" header")
	errInvalidUserHeader = errs.NewKind(errs.ErrValidation, "invalid "+HeaderUserID+" header")
)

// RequireSharerUserID resolves the acting user from the identity header.
func RequireSharerUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingUserHeader, httperr.KindValidation, errs.Message(errMissingUserHeader))
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidUserHeader), httperr.KindValidation, errs.Message(errInvalidUserHeader))
			return
		}
		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
