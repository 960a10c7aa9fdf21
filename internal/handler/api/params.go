package api

import (
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidID  = errs.NewKind(errs.ErrValidation, "invalid id")
	errNoIdentity = errs.NewKind(errs.ErrValidation, "missing "+middleware.HeaderUserID+" header")
)

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), httperr.KindValidation, errs.Message(errInvalidID))
		return uuid.Nil, false
	}
	return id, true
}

func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoIdentity, httperr.KindValidation, errs.Message(errNoIdentity))
		return uuid.Nil, false
	}
	return id, true
}
