package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	KindNotFound     = "NotFound error"
	KindAccessDenied = "AccessDenied error"
	KindValidation   = "Validation error"
	KindConflict     = "Conflict"
	KindInternal     = "Internal error"
	KindTooMany      = "Too many requests"
)

type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewResponse(status int, kind, msg string) Response {
	return Response{Status: status, Success: false, Error: kind, Message: msg}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, kind, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, kind, msg)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Respond maps a use-case error onto the envelope by its kind mark.
func Respond(c *gin.Context, err error) {
	status, kind := Classify(err)
	msg := errs.Message(err)
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, kind, msg)
}

func Classify(err error) (int, string) {
	switch {
	case errs.IsNotFound(err):
		return http.StatusNotFound, KindNotFound
	case errs.IsAccessDenied(err):
		return http.StatusForbidden, KindAccessDenied
	case errs.IsValidation(err):
		return http.StatusBadRequest, KindValidation
	case errs.IsConflict(err):
		return http.StatusConflict, KindConflict
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

// BindError answers 400 for a failed ShouldBind*/ShouldBindQuery call.
func BindError(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, KindValidation, BindMessage(err))
}

// BindMessage lists every failed field with its rule; any other bind failure
// (malformed JSON, wrong type) is reported as is.
func BindMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Sprintf("Invalid request: %s", err.Error())
	}
	var b strings.Builder
	b.WriteString("Validation failed for fields: ")
	for _, fe := range verrs {
		fmt.Fprintf(&b, "%s (%s); ", fe.Field(), fe.Tag())
	}
	return strings.TrimSpace(b.String())
}

// UseJSONFieldNames makes gin's validator report json names in field errors.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
}
