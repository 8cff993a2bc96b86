package menu

import "fmt"

const (
	Width   = 9 // slots per row of a generic container menu
	MinRows = 1
	MaxRows = 6 // double chest
)

// ToSlot converts a row and column into a linear slot index.
// The result is not bounds-checked against any grid.
func ToSlot(row, column int) int {
	return row*Width + column
}

// ToRowAndColumn converts a linear slot index into its row and column.
func ToRowAndColumn(slot int) (row, column int) {
	return slot / Width, slot % Width
}

// Occupancy is the read-only view of a grid needed to walk it.
type Occupancy interface {
	Rows() int
	IsEmpty(slot int) bool
}

// Grid is a fixed-size Width x Rows() content grid.
type Grid[T any] interface {
	Occupancy
	Size() int
	Get(slot int) (T, bool)
	Set(slot int, value T) error
	Clear(slot int)
}

// Revisioner is implemented by grids that count writes per slot. A slot's
// revision changes on every Set or Clear of that slot.
type Revisioner interface {
	Revision(slot int) uint64
}

type cell[T any] struct {
	value   T
	present bool
	rev     uint64
}

// Contents is the default slice-backed Grid.
type Contents[T any] struct {
	rows    int
	cells   []cell[T]
	emptyFn func(T) bool
	writes  uint64
}

// ContentsOption configures a Contents grid.
type ContentsOption[T any] func(*Contents[T])

// WithEmptyFunc treats present values for which fn returns true as empty slots
// (e.g. air stacks).
func WithEmptyFunc[T any](fn func(T) bool) ContentsOption[T] {
	return func(c *Contents[T]) { c.emptyFn = fn }
}

// NewContents creates an empty grid with the given number of rows (1-6).
func NewContents[T any](rows int, opts ...ContentsOption[T]) (*Contents[T], error) {
	if rows < MinRows || rows > MaxRows {
		return nil, fmt.Errorf("%w: rows %d not in [%d, %d]", ErrInvalidArgument, rows, MinRows, MaxRows)
	}
	c := &Contents[T]{
		rows:  rows,
		cells: make([]cell[T], rows*Width),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Contents[T]) Rows() int { return c.rows }

func (c *Contents[T]) Size() int { return len(c.cells) }

func (c *Contents[T]) inRange(slot int) bool {
	return slot >= 0 && slot < len(c.cells)
}

// Get returns the value at slot. ok is false for unset or out-of-range slots.
func (c *Contents[T]) Get(slot int) (value T, ok bool) {
	if !c.inRange(slot) {
		return value, false
	}
	e := c.cells[slot]
	return e.value, e.present
}

// Set stores value at slot, replacing whatever was there.
func (c *Contents[T]) Set(slot int, value T) error {
	if !c.inRange(slot) {
		return fmt.Errorf("%w: slot %d not in [0, %d)", ErrSlotOutOfRange, slot, len(c.cells))
	}
	c.put(slot, value, true)
	return nil
}

func (c *Contents[T]) put(slot int, value T, present bool) {
	c.writes++
	c.cells[slot] = cell[T]{value: value, present: present, rev: c.writes}
}

func (c *Contents[T]) Clear(slot int) {
	if c.inRange(slot) {
		var zero T
		c.put(slot, zero, false)
	}
}

// ClearAll empties every slot.
func (c *Contents[T]) ClearAll() {
	var zero T
	for i := range c.cells {
		c.put(i, zero, false)
	}
}

// Revision returns the write counter of slot, 0 if it was never written.
func (c *Contents[T]) Revision(slot int) uint64 {
	if !c.inRange(slot) {
		return 0
	}
	return c.cells[slot].rev
}

// IsEmpty reports whether slot holds no content. Out-of-range slots are empty.
func (c *Contents[T]) IsEmpty(slot int) bool {
	if !c.inRange(slot) {
		return true
	}
	e := c.cells[slot]
	if !e.present {
		return true
	}
	return c.emptyFn != nil && c.emptyFn(e.value)
}

func (c *Contents[T]) GetAt(row, column int) (T, bool) {
	if column < 0 || column >= Width {
		var zero T
		return zero, false
	}
	return c.Get(ToSlot(row, column))
}

func (c *Contents[T]) SetAt(row, column int, value T) error {
	if column < 0 || column >= Width {
		return fmt.Errorf("%w: column %d not in [0, %d)", ErrSlotOutOfRange, column, Width)
	}
	return c.Set(ToSlot(row, column), value)
}

// Fill sets every slot to value.
func (c *Contents[T]) Fill(value T) {
	for i := range c.cells {
		c.put(i, value, true)
	}
}

func (c *Contents[T]) FillRow(row int, value T) error {
	if row < 0 || row >= c.rows {
		return fmt.Errorf("%w: row %d not in [0, %d)", ErrSlotOutOfRange, row, c.rows)
	}
	for col := range Width {
		c.put(ToSlot(row, col), value, true)
	}
	return nil
}

func (c *Contents[T]) FillColumn(column int, value T) error {
	if column < 0 || column >= Width {
		return fmt.Errorf("%w: column %d not in [0, %d)", ErrSlotOutOfRange, column, Width)
	}
	for row := range c.rows {
		c.put(ToSlot(row, column), value, true)
	}
	return nil
}

// FillBorders sets the outer ring of the grid to value.
func (c *Contents[T]) FillBorders(value T) {
	for slot := range c.cells {
		row, col := ToRowAndColumn(slot)
		if row == 0 || row == c.rows-1 || col == 0 || col == Width-1 {
			c.put(slot, value, true)
		}
	}
}

// FirstEmpty returns the lowest empty slot, or -1 if the grid is full.
func (c *Contents[T]) FirstEmpty() int {
	for slot := range c.cells {
		if c.IsEmpty(slot) {
			return slot
		}
	}
	return -1
}

// Slots returns a copy of every slot's value. Unset slots hold the zero value.
func (c *Contents[T]) Slots() []T {
	result := make([]T, len(c.cells))
	for i, e := range c.cells {
		result[i] = e.value
	}
	return result
}
