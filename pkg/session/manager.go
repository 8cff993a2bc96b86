package session

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/go-mclib/menus/pkg/menu"
	"github.com/google/uuid"
)

// Manager tracks open sessions. Each session must only be driven from one
// goroutine at a time; the manager only guards its own registry.
type Manager[T any] struct {
	Logger *log.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session[T]
	order    []uuid.UUID

	contentOpts []menu.ContentsOption[T]

	onOpen       []func(s *Session[T])
	onClose      []func(s *Session[T])
	onPageChange []func(s *Session[T], from, to int)
}

// NewManager creates an empty registry. opts are applied to every
// session grid it creates.
func NewManager[T any](opts ...menu.ContentsOption[T]) *Manager[T] {
	return &Manager[T]{
		Logger:      log.New(os.Stdout, "", log.LstdFlags),
		sessions:    make(map[uuid.UUID]*Session[T]),
		contentOpts: opts,
	}
}

// events

func (m *Manager[T]) OnOpen(cb func(s *Session[T])) {
	m.onOpen = append(m.onOpen, cb)
}

func (m *Manager[T]) OnClose(cb func(s *Session[T])) {
	m.onClose = append(m.onClose, cb)
}

func (m *Manager[T]) OnPageChange(cb func(s *Session[T], from, to int)) {
	m.onPageChange = append(m.onPageChange, cb)
}

// Open creates a session with a rows x 9 grid, lets the provider fill it
// and renders the first page.
func (m *Manager[T]) Open(title string, rows int, provider Provider[T]) (*Session[T], error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: nil provider", menu.ErrInvalidArgument)
	}
	contents, err := menu.NewContents[T](rows, m.contentOpts...)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", title, err)
	}

	s := &Session[T]{
		ID:         uuid.New(),
		Title:      title,
		Contents:   contents,
		Pagination: menu.NewPagination[T](),
		provider:   provider,
		manager:    m,
	}
	provider.Init(s)
	placed := s.Pagination.RenderPage(s.Contents, 1)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.order = append(m.order, s.ID)
	m.mu.Unlock()

	m.Logger.Printf("menu: opened %q (%s) rows=%d items=%d placed=%d pages=%d",
		title, s.ID, rows, s.Pagination.Len(), placed, s.Pagination.PageCount())

	for _, cb := range m.onOpen {
		cb(s)
	}
	return s, nil
}

// Get returns an open session by id, or nil.
func (m *Manager[T]) Get(id uuid.UUID) *Session[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Close removes a session from the registry.
func (m *Manager[T]) Close(id uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("session %s not open", id)
	}
	delete(m.sessions, id)
	for i, other := range m.order {
		if other == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	m.Logger.Printf("menu: closed %q (%s)", s.Title, id)
	for _, cb := range m.onClose {
		cb(s)
	}
	return nil
}

// Sessions returns the open sessions in the order they were opened.
func (m *Manager[T]) Sessions() []*Session[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*Session[T], 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.sessions[id])
	}
	return result
}

func (m *Manager[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Tick runs every provider's Update and redraws the current page. The host
// scheduler decides how often to call it.
func (m *Manager[T]) Tick() {
	for _, s := range m.Sessions() {
		s.provider.Update(s)
		s.Render()
	}
}

func (m *Manager[T]) pageChanged(s *Session[T], from, to int) {
	if m == nil {
		return
	}
	for _, cb := range m.onPageChange {
		cb(s, from, to)
	}
}
