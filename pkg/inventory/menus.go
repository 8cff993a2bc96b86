package inventory

import (
	"fmt"

	"github.com/go-mclib/menus/pkg/menu"
)

// MenuType represents a Minecraft container menu type from the minecraft:menu registry.
type MenuType int32

const (
	MenuGeneric9x1 MenuType = 0
	MenuGeneric9x2 MenuType = 1
	MenuGeneric9x3 MenuType = 2 // single chest, barrel
	MenuGeneric9x4 MenuType = 3
	MenuGeneric9x5 MenuType = 4
	MenuGeneric9x6 MenuType = 5 // double chest
)

// PlayerInvSlots is the main(27) + hotbar(9) block appended to every container view.
const PlayerInvSlots = 36

// Rows returns the grid height of a generic 9-wide menu.
func Rows(t MenuType) (int, error) {
	if t < MenuGeneric9x1 || t > MenuGeneric9x6 {
		return 0, fmt.Errorf("%w: menu type %d is not a generic 9xN menu", menu.ErrInvalidArgument, t)
	}
	return int(t) + 1, nil
}

// MenuFor returns the generic menu type holding rows rows.
func MenuFor(rows int) (MenuType, error) {
	if rows < menu.MinRows || rows > menu.MaxRows {
		return -1, fmt.Errorf("%w: rows %d", menu.ErrInvalidArgument, rows)
	}
	return MenuType(rows - 1), nil
}

// ViewSlots returns the number of slots in the full container view
// (container slots followed by the player inventory).
func ViewSlots(t MenuType) int {
	rows, err := Rows(t)
	if err != nil {
		return 0
	}
	return rows*menu.Width + PlayerInvSlots
}

// IsContainerSlot reports whether a view index falls inside the container
// part of a generic menu rather than the player inventory below it.
func IsContainerSlot(t MenuType, viewIndex int) bool {
	rows, err := Rows(t)
	if err != nil {
		return false
	}
	return viewIndex >= 0 && viewIndex < rows*menu.Width
}
