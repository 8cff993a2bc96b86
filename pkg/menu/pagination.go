package menu

import "fmt"

// Pagination splits a growing item list into pages and places the active
// page onto a grid through a SlotIterator. Pages are 1-based.
type Pagination[T any] struct {
	items    []T
	perPage  int // explicit, 0 if unset
	derived  int // iterator capacity on the last rendered grid
	page     int
	iterator *SlotIterator

	placed []placement[T] // slots written by the last render
}

// placement remembers what a render covered so the next render can put it back.
type placement[T any] struct {
	slot    int
	prev    T
	hadPrev bool
	rev     uint64 // grid revision right after the write, if tracked
}

func NewPagination[T any]() *Pagination[T] {
	return &Pagination[T]{page: 1}
}

// SetItemsPerPage fixes the page capacity.
func (p *Pagination[T]) SetItemsPerPage(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: items per page %d", ErrInvalidArgument, n)
	}
	p.perPage = n
	return nil
}

// ItemsPerPage returns the explicit capacity, or the capacity measured
// during the last render when none was set. 0 means a single page.
func (p *Pagination[T]) ItemsPerPage() int {
	if p.perPage > 0 {
		return p.perPage
	}
	return p.derived
}

// SetIterator binds the iterator used to place items. The iterator is
// cloned so any in-progress cursor is dropped.
func (p *Pagination[T]) SetIterator(it *SlotIterator) {
	if it == nil {
		p.iterator = nil
		return
	}
	p.iterator = it.Clone()
}

func (p *Pagination[T]) Iterator() *SlotIterator { return p.iterator }

// AddItem appends items. Nothing is written to a grid until the next render.
func (p *Pagination[T]) AddItem(items ...T) {
	p.items = append(p.items, items...)
}

// Items returns a copy of all buffered items.
func (p *Pagination[T]) Items() []T {
	return append([]T(nil), p.items...)
}

func (p *Pagination[T]) Len() int { return len(p.items) }

func (p *Pagination[T]) PageCount() int {
	per := p.ItemsPerPage()
	if per <= 0 || len(p.items) == 0 {
		return 1
	}
	return (len(p.items) + per - 1) / per
}

func (p *Pagination[T]) clamp(page int) int {
	return max(1, min(page, p.PageCount()))
}

// Page returns the current page, clamped to [1, PageCount()].
func (p *Pagination[T]) Page() int { return p.clamp(p.page) }

func (p *Pagination[T]) IsFirst() bool { return p.Page() == 1 }

func (p *Pagination[T]) IsLast() bool { return p.Page() == p.PageCount() }

// Next moves to the following page. It does nothing on the last page.
func (p *Pagination[T]) Next() *Pagination[T] {
	if !p.IsLast() {
		p.page = p.Page() + 1
	}
	return p
}

// Previous moves to the preceding page. It does nothing on the first page.
func (p *Pagination[T]) Previous() *Pagination[T] {
	if !p.IsFirst() {
		p.page = p.Page() - 1
	}
	return p
}

func (p *Pagination[T]) First() *Pagination[T] {
	p.page = 1
	return p
}

func (p *Pagination[T]) Last() *Pagination[T] {
	p.page = p.PageCount()
	return p
}

// SetPage moves to page, clamped to the valid range.
func (p *Pagination[T]) SetPage(page int) *Pagination[T] {
	p.page = p.clamp(page)
	return p
}

func (p *Pagination[T]) pageItems(page int) []T {
	per := p.ItemsPerPage()
	if per <= 0 {
		return p.items
	}
	from := (page - 1) * per
	if from >= len(p.items) {
		return nil
	}
	return p.items[from:min(from+per, len(p.items))]
}

// PageItems returns a copy of the items on the current page.
func (p *Pagination[T]) PageItems() []T {
	return append([]T(nil), p.pageItems(p.Page())...)
}

// Render places the current page onto grid.
func (p *Pagination[T]) Render(grid Grid[T]) int {
	return p.RenderPage(grid, p.page)
}

// RenderPage makes page current and places its items onto grid in list
// order. Slots written by the previous render get their earlier content
// back first, unless the grid reports they were written since. Placement
// stops quietly once the iterator runs out of slots; the number of items
// placed is returned.
func (p *Pagination[T]) RenderPage(grid Grid[T], page int) int {
	p.restore(grid)

	if p.iterator == nil {
		p.iterator = &SlotIterator{}
	}
	if p.perPage == 0 {
		p.derived = p.iterator.Capacity(grid)
	}
	p.page = p.clamp(page)

	p.iterator.Reset()
	for _, item := range p.pageItems(p.page) {
		slot, ok := p.iterator.Next(grid)
		if !ok {
			break
		}
		prev, hadPrev := grid.Get(slot)
		if err := grid.Set(slot, item); err != nil {
			break
		}
		pl := placement[T]{slot: slot, prev: prev, hadPrev: hadPrev}
		if r, ok := grid.(Revisioner); ok {
			pl.rev = r.Revision(slot)
		}
		p.placed = append(p.placed, pl)
	}
	return len(p.placed)
}

func (p *Pagination[T]) restore(grid Grid[T]) {
	r, tracked := grid.(Revisioner)
	for i := len(p.placed) - 1; i >= 0; i-- {
		pl := p.placed[i]
		if tracked && r.Revision(pl.slot) != pl.rev {
			continue
		}
		if pl.hadPrev {
			_ = grid.Set(pl.slot, pl.prev)
		} else {
			grid.Clear(pl.slot)
		}
	}
	p.placed = p.placed[:0]
}

// Placed returns the slots written by the last render.
func (p *Pagination[T]) Placed() []int {
	result := make([]int, len(p.placed))
	for i, pl := range p.placed {
		result[i] = pl.slot
	}
	return result
}

// Copy returns an independent snapshot with the same items, capacity,
// iterator configuration and page, e.g. to preview p.Copy().Next().Page().
// The copy has no render history: it will not undo p's last render, so
// render it onto its own grid, not the one p renders to.
func (p *Pagination[T]) Copy() *Pagination[T] {
	c := &Pagination[T]{
		items:   append([]T(nil), p.items...),
		perPage: p.perPage,
		derived: p.derived,
		page:    p.page,
	}
	if p.iterator != nil {
		c.iterator = p.iterator.Clone()
	}
	return c
}
