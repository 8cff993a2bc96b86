package inventory

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-mclib/data/pkg/data/items"
	"github.com/go-mclib/menus/pkg/menu"
)

// Stack creates a stack of count items by registry name
// (e.g. "minecraft:diamond").
func Stack(name string, n int) (*items.ItemStack, error) {
	id := items.ItemID(name)
	if id < 0 {
		return nil, fmt.Errorf("%w: unknown item %q", menu.ErrInvalidArgument, name)
	}
	if n <= 0 || n > math.MaxInt32 {
		return nil, fmt.Errorf("%w: count %d for %q", menu.ErrInvalidArgument, n, name)
	}
	return &items.ItemStack{ID: id, Count: int32(n)}, nil
}

// Label returns a short display name such as "diamond x3".
func Label(s *items.ItemStack) string {
	if isEmptyStack(s) {
		return ""
	}
	name := strings.TrimPrefix(items.ItemName(s.ID), "minecraft:")
	if int(s.Count) > 1 {
		return fmt.Sprintf("%s x%d", name, s.Count)
	}
	return name
}
