package inventory

import (
	"math"
	"testing"

	"github.com/go-mclib/data/pkg/data/items"
	"github.com/go-mclib/menus/pkg/menu"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRows(t *testing.T) {
	tests := []struct {
		menu MenuType
		rows int
	}{
		{MenuGeneric9x1, 1},
		{MenuGeneric9x3, 3},
		{MenuGeneric9x6, 6},
	}
	for _, tt := range tests {
		rows, err := Rows(tt.menu)
		require.NoError(t, err)
		assert.Equal(t, tt.rows, rows)

		back, err := MenuFor(rows)
		require.NoError(t, err)
		assert.Equal(t, tt.menu, back)
	}

	_, err := Rows(MenuType(6))
	assert.ErrorIs(t, err, menu.ErrInvalidArgument)
	_, err = MenuFor(0)
	assert.ErrorIs(t, err, menu.ErrInvalidArgument)
}

func TestViewSlots(t *testing.T) {
	assert.Equal(t, 63, ViewSlots(MenuGeneric9x3))
	assert.Equal(t, 90, ViewSlots(MenuGeneric9x6))
	assert.Equal(t, 0, ViewSlots(MenuType(20)))

	assert.True(t, IsContainerSlot(MenuGeneric9x3, 26))
	assert.False(t, IsContainerSlot(MenuGeneric9x3, 27))
	assert.False(t, IsContainerSlot(MenuGeneric9x3, -1))
}

func TestGridTreatsNilAsEmpty(t *testing.T) {
	g, err := NewGrid(MenuGeneric9x2)
	require.NoError(t, err)
	assert.Equal(t, 18, g.Size())

	require.NoError(t, g.Set(3, nil))
	assert.True(t, g.IsEmpty(3))
	require.NoError(t, g.Set(4, items.EmptyStack()))
	assert.True(t, g.IsEmpty(4))
}

func TestStack(t *testing.T) {
	_, err := Stack("minecraft:not_an_item", 1)
	assert.ErrorIs(t, err, menu.ErrInvalidArgument)
	_, err = Stack("minecraft:diamond", 0)
	assert.ErrorIs(t, err, menu.ErrInvalidArgument)
	_, err = Stack("minecraft:diamond", math.MaxInt32+1)
	assert.ErrorIs(t, err, menu.ErrInvalidArgument)

	s, err := Stack("minecraft:diamond", 3)
	require.NoError(t, err)
	assert.Equal(t, items.ItemID("minecraft:diamond"), s.ID)
	assert.Equal(t, int32(3), s.Count)
	assert.Equal(t, "diamond x3", Label(s))
	assert.Equal(t, "", Label(nil))
}

func TestFindItem(t *testing.T) {
	g, err := NewGrid(MenuGeneric9x1)
	require.NoError(t, err)

	diamond, err := Stack("minecraft:diamond", 1)
	require.NoError(t, err)
	require.NoError(t, g.Set(2, diamond))
	require.NoError(t, g.Set(5, diamond))

	assert.Equal(t, 2, FindItem(g, diamond.ID))
	assert.Equal(t, []int{2, 5}, FindItems(g, diamond.ID))
	assert.Equal(t, -1, FindItem(g, items.ItemID("minecraft:stone")))
}

func TestLoadClearsMissingSlots(t *testing.T) {
	g, err := NewGrid(MenuGeneric9x1)
	require.NoError(t, err)

	diamond, err := Stack("minecraft:diamond", 1)
	require.NoError(t, err)
	g.Fill(diamond)

	Load(g, make([]ns.Slot, 4))
	for i := range g.Size() {
		assert.True(t, g.IsEmpty(i), "slot %d", i)
	}
}

func TestPlaceStacksWithIterator(t *testing.T) {
	g, err := NewGrid(MenuGeneric9x1)
	require.NoError(t, err)

	diamond, err := Stack("minecraft:diamond", 1)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, items.EmptyStack()))

	it, err := menu.NewSlotIterator().Build()
	require.NoError(t, err)
	slot, ok := menu.Place(it, g, diamond)
	assert.True(t, ok)
	assert.Equal(t, 0, slot, "air stacks are overwritten")
}
