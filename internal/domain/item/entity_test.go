//go:build unit

package item_test

import (
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/item"
	"shareit/internal/pkg/ptr"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.ItemBuilder)
		errIs  error
	}{
		{name: "defaults", mutate: func(*builder.ItemBuilder) {}},
		{name: "unavailable item", mutate: func(b *builder.ItemBuilder) { b.AsUnavailable() }},
		{name: "answers a request", mutate: func(b *builder.ItemBuilder) { b.WithRequest(uuid.New()) }},
		{name: "blank name", mutate: func(b *builder.ItemBuilder) { b.WithName(" ") }, errIs: item.ErrEmptyName},
		{name: "blank description", mutate: func(b *builder.ItemBuilder) { b.WithDescription("") }, errIs: item.ErrEmptyDescription},
		{
			name:   "description too long",
			mutate: func(b *builder.ItemBuilder) { b.WithDescription(strings.Repeat("x", item.MaxDescriptionLength+1)) },
			errIs:  item.ErrDescriptionTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := builder.NewItemBuilder().With(tt.mutate).BuildDomain()

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, actual.ID())
		})
	}
}

func TestItem_ApplyPatch(t *testing.T) {
	later := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		patch           item.Patch
		wantName        string
		wantDescription string
		wantAvailable   bool
	}{
		{
			name:            "empty patch keeps everything",
			patch:           item.Patch{},
			wantName:        "Cordless drill",
			wantDescription: "18V drill with two batteries",
			wantAvailable:   true,
		},
		{
			name:            "blank text keeps current value",
			patch:           item.Patch{Name: ptr.Of("  "), Description: ptr.Of("")},
			wantName:        "Cordless drill",
			wantDescription: "18V drill with two batteries",
			wantAvailable:   true,
		},
		{
			name:            "availability only",
			patch:           item.Patch{Available: ptr.Of(false)},
			wantName:        "Cordless drill",
			wantDescription: "18V drill with two batteries",
			wantAvailable:   false,
		},
		{
			name:            "all fields",
			patch:           item.Patch{Name: ptr.Of(" Hammer "), Description: ptr.Of("Claw hammer"), Available: ptr.Of(false)},
			wantName:        "Hammer",
			wantDescription: "Claw hammer",
			wantAvailable:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := builder.NewItemBuilder().BuildDomain()
			require.NoError(t, err)

			require.NoError(t, it.ApplyPatch(tt.patch, later))

			assert.Equal(t, tt.wantName, it.Name())
			assert.Equal(t, tt.wantDescription, it.Description())
			assert.Equal(t, tt.wantAvailable, it.Available())
			assert.Equal(t, later, it.UpdatedAt())
		})
	}
}
