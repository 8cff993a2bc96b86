package session

import (
	"io"
	"log"
	"testing"

	"github.com/go-mclib/menus/pkg/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	items   int
	updates int
}

func (p *countingProvider) Init(s *Session[int]) {
	pat := menu.NewPattern()
	_ = pat.Define(
		"#########",
		"#.......#",
		"#########",
	)
	s.Pattern = pat
	_ = menu.SetByKey(pat, s.Contents, '#', -1)

	ip, _ := menu.NewIteratorPattern().Define(pat.Lines()...).Attach('.').Build()
	it, _ := menu.NewSlotIterator().WithPattern(ip).Build()
	s.Pagination.SetIterator(it)
	for i := range p.items {
		s.Pagination.AddItem(i)
	}
}

func (p *countingProvider) Update(*Session[int]) { p.updates++ }

func newTestManager() *Manager[int] {
	m := NewManager[int]()
	m.Logger = log.New(io.Discard, "", 0)
	return m
}

func TestOpenRendersFirstPage(t *testing.T) {
	m := newTestManager()
	var opened int
	m.OnOpen(func(*Session[int]) { opened++ })

	s, err := m.Open("shop", 3, &countingProvider{items: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, opened)
	assert.Equal(t, 1, m.Len())
	assert.Same(t, s, m.Get(s.ID))

	assert.Equal(t, 7, s.Pagination.ItemsPerPage())
	assert.Equal(t, 2, s.Pagination.PageCount())

	found, err := s.Search('.')
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, found)
}

func TestOpenInvalid(t *testing.T) {
	m := newTestManager()
	_, err := m.Open("bad", 7, &countingProvider{})
	assert.ErrorIs(t, err, menu.ErrInvalidArgument)

	_, err = m.Open("nil", 3, nil)
	assert.ErrorIs(t, err, menu.ErrInvalidArgument)
	assert.Equal(t, 0, m.Len())
}

func TestSessionNavigation(t *testing.T) {
	m := newTestManager()
	var changes [][2]int
	m.OnPageChange(func(_ *Session[int], from, to int) {
		changes = append(changes, [2]int{from, to})
	})

	s, err := m.Open("shop", 3, &countingProvider{items: 10})
	require.NoError(t, err)

	assert.False(t, s.PreviousPage())
	assert.True(t, s.NextPage())
	assert.False(t, s.NextPage())
	assert.Equal(t, 2, s.Pagination.Page())

	found, err := s.Search('.')
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9}, found)

	assert.True(t, s.FirstPage())
	assert.True(t, s.LastPage())
	assert.Equal(t, [][2]int{{1, 2}, {2, 1}, {1, 2}}, changes)
}

func TestResolve(t *testing.T) {
	m := newTestManager()
	s, err := m.Open("shop", 3, &countingProvider{})
	require.NoError(t, err)

	row, col, key, ok := s.Resolve(12)
	assert.Equal(t, 1, row)
	assert.Equal(t, 3, col)
	assert.True(t, ok)
	assert.Equal(t, '.', key)

	s.Pattern = nil
	_, _, _, ok = s.Resolve(12)
	assert.False(t, ok)
	_, err = s.Search('.')
	assert.ErrorIs(t, err, menu.ErrPatternNotDefined)
}

func TestCloseAndTick(t *testing.T) {
	m := newTestManager()
	var closed int
	m.OnClose(func(*Session[int]) { closed++ })

	p := &countingProvider{items: 3}
	a, err := m.Open("a", 3, p)
	require.NoError(t, err)
	b, err := m.Open("b", 3, p)
	require.NoError(t, err)
	assert.Equal(t, []*Session[int]{a, b}, m.Sessions())

	m.Tick()
	assert.Equal(t, 2, p.updates)

	require.NoError(t, m.Close(a.ID))
	assert.Error(t, m.Close(a.ID))
	assert.Nil(t, m.Get(a.ID))
	assert.Equal(t, 1, closed)

	m.Tick()
	assert.Equal(t, 3, p.updates)
}

func TestProviderFunc(t *testing.T) {
	m := newTestManager()
	s, err := m.Open("plain", 1, ProviderFunc[int](func(s *Session[int]) {
		s.Pagination.AddItem(1, 2, 3)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, s.Pagination.Placed())
	m.Tick()
}
