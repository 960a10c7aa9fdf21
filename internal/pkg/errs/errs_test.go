//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"shareit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestNewKind(t *testing.T) {
	errItem := errs.NewKind(errs.ErrValidation, "item unavailable for booking")

	t.Run("marked error matches its kind only", func(t *testing.T) {
		assert.True(t, errs.IsValidation(errItem))
		assert.False(t, errs.IsNotFound(errItem))
		assert.False(t, errs.IsAccessDenied(errItem))
		assert.False(t, errs.IsConflict(errItem))
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		wrapped := errs.Wrap(errs.Wrap(errItem, "create booking"), "handler")
		assert.True(t, errs.IsValidation(wrapped))
		assert.True(t, errs.Is(wrapped, errItem))
	})

	t.Run("message drops wrap prefixes", func(t *testing.T) {
		wrapped := errs.Wrap(errItem, "create booking")
		assert.Equal(t, "create booking: item unavailable for booking", wrapped.Error())
		assert.Equal(t, "item unavailable for booking", errs.Message(wrapped))
	})
}

func TestMark(t *testing.T) {
	base := errors.New("db down")

	assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
	assert.True(t, errs.IsConflict(errs.Mark(base, errs.ErrConflict)))
	assert.Empty(t, errs.Message(nil))
	assert.Nil(t, errs.Wrap(nil, "noop"))
}
