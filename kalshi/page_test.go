package kalshi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_HasMore(t *testing.T) {
	tests := []struct {
		name  string
		items int
		limit int
		want  bool
	}{
		{
			name:  "full page with limit",
			items: 50,
			limit: 50,
			want:  true,
		},
		{
			name:  "partial page with limit",
			items: 12,
			limit: 50,
			want:  false,
		},
		{
			name:  "no limit given",
			items: 50,
			limit: 0,
			want:  false,
		},
		{
			name:  "empty page",
			items: 0,
			limit: 50,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, tt.items)
			page := newPage(items, "cursor", tt.limit)
			assert.Equal(t, tt.want, page.HasMore())
		})
	}
}

func TestPage_Accessors(t *testing.T) {
	page := newPage([]string{"a", "b", "c"}, "next", 10)

	assert.Equal(t, 3, page.Len())
	assert.False(t, page.IsEmpty())
	assert.Equal(t, "b", page.At(1))
	assert.Equal(t, "next", page.Cursor())
	assert.Equal(t, []string{"a", "b", "c"}, page.Items())
}

func TestPage_Empty(t *testing.T) {
	page := newPage[string](nil, "", 0)

	assert.True(t, page.IsEmpty())
	assert.Equal(t, 0, page.Len())
	assert.Empty(t, page.Items())
	assert.Empty(t, page.Cursor())
	assert.False(t, page.HasMore())
}

func TestPage_ItemsReturnsCopy(t *testing.T) {
	page := newPage([]string{"a", "b"}, "", 0)

	items := page.Items()
	items[0] = "mutated"

	assert.Equal(t, "a", page.At(0))
	assert.Equal(t, []string{"a", "b"}, page.Items())
}
