package inventory

import (
	"fmt"

	"github.com/go-mclib/data/pkg/data/items"
	"github.com/go-mclib/data/pkg/packets"
	"github.com/go-mclib/menus/pkg/menu"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

// Grid is a menu grid holding item stacks.
type Grid = menu.Contents[*items.ItemStack]

func isEmptyStack(s *items.ItemStack) bool {
	return s == nil || s.IsEmpty()
}

// GridOption makes air stacks count as empty slots.
func GridOption() menu.ContentsOption[*items.ItemStack] {
	return menu.WithEmptyFunc(isEmptyStack)
}

// NewGrid creates an empty item grid with the height of menu type t.
func NewGrid(t MenuType) (*Grid, error) {
	rows, err := Rows(t)
	if err != nil {
		return nil, err
	}
	return menu.NewContents[*items.ItemStack](rows, GridOption())
}

func decodeSlot(raw ns.Slot) *items.ItemStack {
	stack, err := items.FromSlot(raw)
	if err != nil {
		return items.EmptyStack()
	}
	return stack
}

// Load decodes container slot payloads into grid. Slots beyond the grid
// (the trailing player inventory) are ignored; grid slots without a
// payload are cleared.
func Load(grid menu.Grid[*items.ItemStack], slots []ns.Slot) {
	count := min(len(slots), grid.Size())
	for i := 0; i < count; i++ {
		if slots[i].IsEmpty() {
			grid.Clear(i)
			continue
		}
		_ = grid.Set(i, decodeSlot(slots[i]))
	}
	for i := count; i < grid.Size(); i++ {
		grid.Clear(i)
	}
}

// LoadContent applies a full container content packet and returns its state id.
func LoadContent(grid menu.Grid[*items.ItemStack], d *packets.S2CContainerSetContent) int32 {
	Load(grid, d.Slots)
	return int32(d.StateId)
}

// ApplySlot applies a single slot update. Updates outside the container
// part of the view are ignored.
func ApplySlot(grid menu.Grid[*items.ItemStack], d *packets.S2CContainerSetSlot) error {
	idx := int(d.Slot)
	if idx < 0 || idx >= grid.Size() {
		return fmt.Errorf("%w: slot %d", menu.ErrSlotOutOfRange, idx)
	}
	if d.SlotData.IsEmpty() {
		grid.Clear(idx)
		return nil
	}
	return grid.Set(idx, decodeSlot(d.SlotData))
}

// FindItem returns the first slot containing the given item ID, or -1.
func FindItem(grid menu.Grid[*items.ItemStack], itemID int32) int {
	for i := range grid.Size() {
		if s, ok := grid.Get(i); ok && !isEmptyStack(s) && s.ID == itemID {
			return i
		}
	}
	return -1
}

// FindItems returns all slots containing the given item ID.
func FindItems(grid menu.Grid[*items.ItemStack], itemID int32) []int {
	var result []int
	for i := range grid.Size() {
		if s, ok := grid.Get(i); ok && !isEmptyStack(s) && s.ID == itemID {
			result = append(result, i)
		}
	}
	return result
}
