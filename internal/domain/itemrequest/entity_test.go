//go:build unit

package itemrequest_test

import (
	"strings"
	"testing"

	"shareit/internal/domain/itemrequest"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemRequest(t *testing.T) {
	t.Run("trims description", func(t *testing.T) {
		r, err := builder.NewItemRequestBuilder().WithDescription("  need a tent ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "need a tent", r.Description())
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := builder.NewItemRequestBuilder().WithDescription(" \t").BuildDomain()
		assert.ErrorIs(t, err, itemrequest.ErrEmptyDescription)
	})

	t.Run("description too long", func(t *testing.T) {
		_, err := builder.NewItemRequestBuilder().
			WithDescription(strings.Repeat("d", itemrequest.MaxDescriptionLength+1)).
			BuildDomain()
		assert.ErrorIs(t, err, itemrequest.ErrDescriptionTooLong)
	})
}
