package session

import (
	"github.com/go-mclib/menus/pkg/menu"
	"github.com/google/uuid"
)

// Provider fills a session. Init runs once when the session opens; Update
// runs on every Manager.Tick.
type Provider[T any] interface {
	Init(s *Session[T])
	Update(s *Session[T])
}

// ProviderFunc adapts an init function into a Provider with a no-op Update.
type ProviderFunc[T any] func(s *Session[T])

func (f ProviderFunc[T]) Init(s *Session[T]) { f(s) }

func (f ProviderFunc[T]) Update(*Session[T]) {}

// Session is one open menu: its grid, its pagination and an optional
// pattern used for searches and click resolution.
type Session[T any] struct {
	ID         uuid.UUID
	Title      string
	Contents   *menu.Contents[T]
	Pagination *menu.Pagination[T]
	Pattern    *menu.Pattern

	provider Provider[T]
	manager  *Manager[T]
}

func (s *Session[T]) Rows() int { return s.Contents.Rows() }

// Logf writes to the owning manager's logger. Sessions built outside a
// manager log nothing.
func (s *Session[T]) Logf(format string, args ...any) {
	if s.manager == nil || s.manager.Logger == nil {
		return
	}
	s.manager.Logger.Printf(format, args...)
}

// Render redraws the current page.
func (s *Session[T]) Render() int {
	return s.Pagination.Render(s.Contents)
}

// OpenPage renders page (clamped) and reports whether the page changed.
func (s *Session[T]) OpenPage(page int) bool {
	before := s.Pagination.Page()
	s.Pagination.RenderPage(s.Contents, page)
	after := s.Pagination.Page()
	if after != before {
		s.manager.pageChanged(s, before, after)
		return true
	}
	return false
}

// NextPage moves one page forward. It is a no-op on the last page.
func (s *Session[T]) NextPage() bool {
	if s.Pagination.IsLast() {
		return false
	}
	return s.OpenPage(s.Pagination.Page() + 1)
}

// PreviousPage moves one page back. It is a no-op on the first page.
func (s *Session[T]) PreviousPage() bool {
	if s.Pagination.IsFirst() {
		return false
	}
	return s.OpenPage(s.Pagination.Page() - 1)
}

func (s *Session[T]) FirstPage() bool { return s.OpenPage(1) }

func (s *Session[T]) LastPage() bool { return s.OpenPage(s.Pagination.PageCount()) }

// Resolve maps a clicked slot to its row, column and pattern key. hasKey is
// false without a pattern or when the slot lies outside it.
func (s *Session[T]) Resolve(slot int) (row, column int, key rune, hasKey bool) {
	row, column = menu.ToRowAndColumn(slot)
	if s.Pattern != nil {
		key, hasKey = s.Pattern.KeyAt(slot)
	}
	return row, column, key, hasKey
}

// Search returns the contents under key in the session pattern.
func (s *Session[T]) Search(key rune) ([]T, error) {
	if s.Pattern == nil {
		return nil, menu.ErrPatternNotDefined
	}
	return menu.SearchByKey(s.Pattern, s.Contents, key)
}

// Slots returns the slots under key in the session pattern.
func (s *Session[T]) Slots(key rune) ([]int, error) {
	if s.Pattern == nil {
		return nil, menu.ErrPatternNotDefined
	}
	return s.Pattern.Slots(key)
}
