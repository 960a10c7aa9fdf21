//go:build unit

package patch_test

import (
	"testing"

	"shareit/internal/pkg/patch"
	"shareit/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "old", patch.Coalesce(nil, "old"))
	assert.Equal(t, "new", patch.Coalesce(ptr.Of("new"), "old"))
	assert.False(t, patch.Coalesce(ptr.Of(false), true))
}

func TestCoalesceText(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  string
	}{
		{name: "nil keeps current", value: nil, want: "Drill"},
		{name: "blank keeps current", value: ptr.Of("   "), want: "Drill"},
		{name: "value is trimmed", value: ptr.Of("  Hammer "), want: "Hammer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, patch.CoalesceText(tt.value, "Drill"))
		})
	}
}
