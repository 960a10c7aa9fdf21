//go:build unit

package comment_test

import (
	"strings"
	"testing"

	"shareit/internal/domain/comment"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantText string
		errIs    error
	}{
		{name: "trimmed", text: "  Nice drill  ", wantText: "Nice drill"},
		{name: "max length", text: strings.Repeat("a", comment.MaxTextLength), wantText: strings.Repeat("a", comment.MaxTextLength)},
		{name: "empty", text: "", errIs: comment.ErrEmptyText},
		{name: "whitespace only", text: "   ", errIs: comment.ErrEmptyText},
		{name: "too long", text: strings.Repeat("a", comment.MaxTextLength+1), errIs: comment.ErrTextTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := builder.NewCommentBuilder().WithText(tt.text).BuildDomain()

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, c.Text().String())
		})
	}
}
