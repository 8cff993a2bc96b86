package menu

import (
	"fmt"
	"slices"
)

type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "horizontal" or "vertical".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "horizontal", "":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidArgument, s)
}

// SlotIterator walks grid slots from a start position in one direction,
// skipping blacklisted slots, slots outside an attached pattern's key and,
// unless override is set, occupied slots. Its configuration is fixed at
// build time; only the cursor moves.
type SlotIterator struct {
	start     int
	direction Direction
	blacklist map[int]struct{}
	override  bool
	pattern   *IteratorPattern

	cursor    int
	started   bool
	exhausted bool
}

type SlotIteratorBuilder struct {
	slot      int
	hasSlot   bool
	row, col  int
	hasRowCol bool
	direction Direction
	blacklist []int
	override  bool
	pattern   *IteratorPattern
}

func NewSlotIterator() *SlotIteratorBuilder {
	return &SlotIteratorBuilder{}
}

// StartPosition sets the start slot. It takes precedence over StartAt.
func (b *SlotIteratorBuilder) StartPosition(slot int) *SlotIteratorBuilder {
	b.slot = slot
	b.hasSlot = true
	return b
}

func (b *SlotIteratorBuilder) StartAt(row, column int) *SlotIteratorBuilder {
	b.row, b.col = row, column
	b.hasRowCol = true
	return b
}

func (b *SlotIteratorBuilder) Direction(d Direction) *SlotIteratorBuilder {
	b.direction = d
	return b
}

func (b *SlotIteratorBuilder) Blacklist(slots ...int) *SlotIteratorBuilder {
	b.blacklist = append(b.blacklist, slots...)
	return b
}

func (b *SlotIteratorBuilder) Override(override bool) *SlotIteratorBuilder {
	b.override = override
	return b
}

func (b *SlotIteratorBuilder) WithPattern(p *IteratorPattern) *SlotIteratorBuilder {
	b.pattern = p
	return b
}

func (b *SlotIteratorBuilder) Build() (*SlotIterator, error) {
	start := 0
	switch {
	case b.hasSlot:
		start = b.slot
	case b.hasRowCol:
		if b.row < 0 || b.col < 0 || b.col >= Width {
			return nil, fmt.Errorf("%w: start (%d, %d)", ErrInvalidArgument, b.row, b.col)
		}
		start = ToSlot(b.row, b.col)
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: start slot %d", ErrInvalidArgument, start)
	}
	if b.direction != Horizontal && b.direction != Vertical {
		return nil, fmt.Errorf("%w: direction %d", ErrInvalidArgument, int(b.direction))
	}
	blacklist := make(map[int]struct{}, len(b.blacklist))
	for _, s := range b.blacklist {
		blacklist[s] = struct{}{}
	}
	return &SlotIterator{
		start:     start,
		direction: b.direction,
		blacklist: blacklist,
		override:  b.override,
		pattern:   b.pattern,
	}, nil
}

func (it *SlotIterator) Start() int { return it.start }

func (it *SlotIterator) Direction() Direction { return it.direction }

func (it *SlotIterator) Overrides() bool { return it.override }

func (it *SlotIterator) Pattern() *IteratorPattern { return it.pattern }

// Blacklist returns the forbidden slots in ascending order.
func (it *SlotIterator) Blacklist() []int {
	result := make([]int, 0, len(it.blacklist))
	for s := range it.blacklist {
		result = append(result, s)
	}
	slices.Sort(result)
	return result
}

// Reset rewinds the cursor to before the start position.
func (it *SlotIterator) Reset() {
	it.cursor = 0
	it.started = false
	it.exhausted = false
}

// Clone returns a copy with the same configuration and a fresh cursor.
func (it *SlotIterator) Clone() *SlotIterator {
	return &SlotIterator{
		start:     it.start,
		direction: it.direction,
		blacklist: it.blacklist,
		override:  it.override,
		pattern:   it.pattern,
	}
}

// step returns the slot after slot in the iterator's direction, or -1 once
// the walk leaves the grid.
func (it *SlotIterator) step(slot, rows int) int {
	size := rows * Width
	if it.direction == Horizontal {
		if slot+1 >= size {
			return -1
		}
		return slot + 1
	}
	row, col := ToRowAndColumn(slot)
	row++
	if row >= rows {
		row = 0
		col++
	}
	if col >= Width {
		return -1
	}
	return ToSlot(row, col)
}

func (it *SlotIterator) accepts(grid Occupancy, slot int) bool {
	if _, banned := it.blacklist[slot]; banned {
		return false
	}
	if it.pattern != nil && !it.pattern.Matches(slot) {
		return false
	}
	return it.override || grid.IsEmpty(slot)
}

// Next advances to the next writable slot of grid. ok is false once the
// walk has left the grid; the iterator then stays exhausted until Reset.
func (it *SlotIterator) Next(grid Occupancy) (slot int, ok bool) {
	if it.exhausted {
		return -1, false
	}
	rows := grid.Rows()
	candidate := it.start
	if it.started {
		candidate = it.step(it.cursor, rows)
	}
	it.started = true
	for candidate >= 0 && candidate < rows*Width {
		it.cursor = candidate
		if it.accepts(grid, candidate) {
			return candidate, true
		}
		candidate = it.step(candidate, rows)
	}
	it.exhausted = true
	return -1, false
}

// Exhausted reports whether the last Next call ran off the grid.
func (it *SlotIterator) Exhausted() bool { return it.exhausted }

// Capacity counts the slots a fresh walk over grid would accept, without
// moving this iterator.
func (it *SlotIterator) Capacity(grid Occupancy) int {
	walker := it.Clone()
	n := 0
	for {
		if _, ok := walker.Next(grid); !ok {
			return n
		}
		n++
	}
}

// Place writes value at the iterator's next slot.
func Place[T any](it *SlotIterator, grid Grid[T], value T) (int, bool) {
	slot, ok := it.Next(grid)
	if !ok {
		return -1, false
	}
	if err := grid.Set(slot, value); err != nil {
		return -1, false
	}
	return slot, true
}
