package menu

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Pattern is a fixed-width layout of symbolic keys, one rune per slot.
// Lines are appended with Define/DefineRepeat and never modified afterwards.
type Pattern struct {
	lines [][]rune
}

func NewPattern() *Pattern { return &Pattern{} }

func validateLine(line string) ([]rune, error) {
	if n := utf8.RuneCountInString(line); n != Width {
		return nil, fmt.Errorf("%w: line %q has length %d, want %d", ErrInvalidPattern, line, n, Width)
	}
	return []rune(line), nil
}

// Define validates and appends lines. Nothing is appended if any line is invalid.
func (p *Pattern) Define(lines ...string) error {
	parsed := make([][]rune, 0, len(lines))
	for _, line := range lines {
		r, err := validateLine(line)
		if err != nil {
			return err
		}
		parsed = append(parsed, r)
	}
	p.lines = append(p.lines, parsed...)
	return nil
}

// DefineRepeat appends line amount times. amount must be in [1, MaxRows].
func (p *Pattern) DefineRepeat(line string, amount int) error {
	if amount < 1 || amount > MaxRows {
		return fmt.Errorf("%w: repeat amount %d not in [1, %d]", ErrInvalidPattern, amount, MaxRows)
	}
	r, err := validateLine(line)
	if err != nil {
		return err
	}
	for range amount {
		p.lines = append(p.lines, slices.Clone(r))
	}
	return nil
}

// Lines returns a copy of the defined lines.
func (p *Pattern) Lines() []string {
	result := make([]string, len(p.lines))
	for i, l := range p.lines {
		result[i] = string(l)
	}
	return result
}

func (p *Pattern) Rows() int { return len(p.lines) }

func (p *Pattern) Defined() bool { return len(p.lines) > 0 }

// KeyAt returns the key at slot, or false if slot lies outside the pattern.
func (p *Pattern) KeyAt(slot int) (rune, bool) {
	if slot < 0 {
		return 0, false
	}
	row, col := ToRowAndColumn(slot)
	if row >= len(p.lines) {
		return 0, false
	}
	return p.lines[row][col], true
}

// Contains reports whether key occurs anywhere in the pattern.
func (p *Pattern) Contains(key rune) bool {
	for _, l := range p.lines {
		if slices.Contains(l, key) {
			return true
		}
	}
	return false
}

// Slots returns every slot holding key, in row-major order.
func (p *Pattern) Slots(key rune) ([]int, error) {
	if !p.Defined() {
		return nil, ErrPatternNotDefined
	}
	var result []int
	slot := 0
	for _, l := range p.lines {
		for _, k := range l {
			if k == key {
				result = append(result, slot)
			}
			slot++
		}
	}
	return result, nil
}

// SearchByKey returns the non-empty contents of grid at every slot holding key,
// in slot order.
func SearchByKey[T any](p *Pattern, grid Grid[T], key rune) ([]T, error) {
	slots, err := p.Slots(key)
	if err != nil {
		return nil, err
	}
	var result []T
	for _, slot := range slots {
		if grid.IsEmpty(slot) {
			continue
		}
		if v, ok := grid.Get(slot); ok {
			result = append(result, v)
		}
	}
	return result, nil
}

// SetByKey writes content into grid at every slot holding key. If any of
// those slots lies outside grid nothing is written.
func SetByKey[T any](p *Pattern, grid Grid[T], key rune, content T) error {
	slots, err := p.Slots(key)
	if err != nil {
		return err
	}
	if n := len(slots); n > 0 && slots[n-1] >= grid.Size() {
		return fmt.Errorf("set key %q: %w: slot %d not in [0, %d)", key, ErrSlotOutOfRange, slots[n-1], grid.Size())
	}
	for _, slot := range slots {
		if err := grid.Set(slot, content); err != nil {
			return fmt.Errorf("set key %q: %w", key, err)
		}
	}
	return nil
}
