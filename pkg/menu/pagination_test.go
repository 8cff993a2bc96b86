package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPagination(t *testing.T, n, perPage int) *Pagination[int] {
	t.Helper()
	p := NewPagination[int]()
	for i := range n {
		p.AddItem(i)
	}
	if perPage > 0 {
		require.NoError(t, p.SetItemsPerPage(perPage))
	}
	return p
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		items, perPage, pages int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{13, 10, 2},
		{30, 7, 5},
	}
	for _, tt := range tests {
		p := newPagination(t, tt.items, tt.perPage)
		if got := p.PageCount(); got != tt.pages {
			t.Errorf("PageCount() with %d items, %d per page = %d, want %d", tt.items, tt.perPage, got, tt.pages)
		}
	}
}

func TestSetItemsPerPageInvalid(t *testing.T) {
	p := NewPagination[int]()
	assert.ErrorIs(t, p.SetItemsPerPage(0), ErrInvalidArgument)
	assert.ErrorIs(t, p.SetItemsPerPage(-3), ErrInvalidArgument)
}

func TestNavigation(t *testing.T) {
	p := newPagination(t, 13, 10)

	assert.Equal(t, 1, p.Page())
	assert.True(t, p.IsFirst())
	assert.False(t, p.IsLast())

	assert.Same(t, p, p.Previous())
	assert.Equal(t, 1, p.Page())

	assert.Same(t, p, p.Next())
	assert.Equal(t, 2, p.Page())
	assert.True(t, p.IsLast())
	assert.False(t, p.IsFirst())

	assert.Same(t, p, p.Next())
	assert.Equal(t, 2, p.Page())

	p.First()
	assert.Equal(t, 1, p.Page())
	p.Last()
	assert.Equal(t, 2, p.Page())
	p.SetPage(99)
	assert.Equal(t, 2, p.Page())
	p.SetPage(-4)
	assert.Equal(t, 1, p.Page())
}

func TestCopyPreview(t *testing.T) {
	p := newPagination(t, 13, 10)

	assert.Equal(t, p.Page()+1, p.Copy().Next().Page())
	assert.Equal(t, 1, p.Page())

	c := p.Copy()
	c.AddItem(100)
	assert.Equal(t, 13, p.Len())
	assert.Equal(t, 14, c.Len())
}

func TestCopyHasNoRenderHistory(t *testing.T) {
	grid, err := NewContents[int](2)
	require.NoError(t, err)

	p := newPagination(t, 13, 5)
	p.Render(grid)
	require.Len(t, p.Placed(), 5)

	c := p.Copy()
	assert.Empty(t, c.Placed())
	assert.Equal(t, p.Page(), c.Page())
}

func TestPageClampsAfterResize(t *testing.T) {
	p := newPagination(t, 13, 5)
	p.Last()
	assert.Equal(t, 3, p.Page())

	require.NoError(t, p.SetItemsPerPage(10))
	assert.Equal(t, 2, p.Page())
}

func TestPageItems(t *testing.T) {
	p := newPagination(t, 13, 10)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, p.PageItems())
	p.Next()
	assert.Equal(t, []int{10, 11, 12}, p.PageItems())
}

func TestRenderPage(t *testing.T) {
	grid, err := NewContents[int](2)
	require.NoError(t, err)

	it, err := NewSlotIterator().StartPosition(9).Build()
	require.NoError(t, err)

	p := newPagination(t, 13, 5)
	p.SetIterator(it)

	assert.Equal(t, 5, p.RenderPage(grid, 1))
	assert.Equal(t, []int{9, 10, 11, 12, 13}, p.Placed())
	v, _ := grid.Get(13)
	assert.Equal(t, 4, v)

	assert.Equal(t, 3, p.RenderPage(grid, 3))
	assert.Equal(t, 3, p.Page())
	assert.Equal(t, []int{9, 10, 11}, p.Placed())
	assert.True(t, grid.IsEmpty(12), "previous page cleared")
	v, _ = grid.Get(9)
	assert.Equal(t, 10, v)

	p.Previous()
	assert.Equal(t, 5, p.Render(grid))
	v, _ = grid.Get(9)
	assert.Equal(t, 5, v)
}

func TestRenderTruncatesOnExhaustion(t *testing.T) {
	grid, err := NewContents[int](1)
	require.NoError(t, err)

	it, err := NewSlotIterator().StartPosition(6).Build()
	require.NoError(t, err)

	p := newPagination(t, 10, 10)
	p.SetIterator(it)
	assert.Equal(t, 3, p.RenderPage(grid, 1))
}

func TestRenderDerivesCapacity(t *testing.T) {
	grid, err := NewContents[int](3)
	require.NoError(t, err)
	grid.FillBorders(-1)

	p := newPagination(t, 12, 0)
	assert.Equal(t, 1, p.PageCount())

	assert.Equal(t, 7, p.Render(grid))
	assert.Equal(t, 7, p.ItemsPerPage())
	assert.Equal(t, 2, p.PageCount())

	p.Next()
	assert.Equal(t, 5, p.Render(grid))
	assert.Equal(t, []int{10, 11, 12, 13, 14}, p.Placed())
}

func TestRenderDoesNotMoveLiveIterator(t *testing.T) {
	grid, err := NewContents[int](1)
	require.NoError(t, err)

	it, err := NewSlotIterator().Build()
	require.NoError(t, err)

	p := newPagination(t, 3, 3)
	p.SetIterator(it)
	p.Render(grid)

	slot, ok := it.Next(grid)
	assert.True(t, ok)
	assert.Equal(t, 3, slot)
}

func TestRenderRestoresOverriddenContent(t *testing.T) {
	grid, err := NewContents[int](1)
	require.NoError(t, err)
	grid.Fill(-1)

	it, err := NewSlotIterator().Override(true).Build()
	require.NoError(t, err)

	p := newPagination(t, 6, 5)
	p.SetIterator(it)
	assert.Equal(t, 5, p.RenderPage(grid, 1))
	assert.Equal(t, 1, p.RenderPage(grid, 2))

	v, ok := grid.Get(0)
	require.True(t, ok)
	assert.Equal(t, 5, v)
	for slot := 1; slot < Width; slot++ {
		v, ok := grid.Get(slot)
		require.True(t, ok, "slot %d", slot)
		assert.Equal(t, -1, v, "slot %d", slot)
	}

	p.RenderPage(grid, 1)
	v, _ = grid.Get(4)
	assert.Equal(t, 4, v)
}

func TestRenderKeepsLaterWrites(t *testing.T) {
	grid, err := NewContents[int](1)
	require.NoError(t, err)

	p := newPagination(t, 6, 3)
	assert.Equal(t, 3, p.Render(grid))

	require.NoError(t, grid.Set(1, 42))
	p.Next()
	assert.Equal(t, 3, p.Render(grid))

	v, ok := grid.Get(1)
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, []int{0, 2, 3}, p.Placed())
}
