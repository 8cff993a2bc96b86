package tui

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-mclib/menus/pkg/menu"
	"github.com/go-mclib/menus/pkg/session"
)

const cellWidth = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241"))

	emptyCellStyle = cellStyle.
			Foreground(lipgloss.Color("241"))

	matchCellStyle = cellStyle.
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type keyMap struct {
	Next     key.Binding
	Previous key.Binding
	First    key.Binding
	Last     key.Binding
	Search   key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Search, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.First, k.Last},
		{k.Search, k.Quit},
	}
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "n", "l"),
		key.WithHelp("→/n", "next page"),
	),
	Previous: key.NewBinding(
		key.WithKeys("left", "p", "h"),
		key.WithHelp("←/p", "previous page"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first page"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last page"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search key"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// Browser is a bubbletea model that pages through a menu session.
type Browser[T any] struct {
	session *session.Session[T]
	label   func(T) string

	help      help.Model
	search    textinput.Model
	searching bool
	matches   []int
	status    string
}

// New creates a browser for s. label renders one slot's content.
func New[T any](s *session.Session[T], label func(T) string) *Browser[T] {
	ti := textinput.New()
	ti.Placeholder = "pattern key"
	ti.CharLimit = 1
	ti.Width = 12

	return &Browser[T]{
		session: s,
		label:   label,
		help:    help.New(),
		search:  ti,
	}
}

func (b *Browser[T]) Init() tea.Cmd { return nil }

func (b *Browser[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.help.Width = msg.Width
		return b, nil

	case tea.KeyMsg:
		if b.searching {
			return b.updateSearch(msg)
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, keys.Next):
			b.navigate(b.session.NextPage())
		case key.Matches(msg, keys.Previous):
			b.navigate(b.session.PreviousPage())
		case key.Matches(msg, keys.First):
			b.navigate(b.session.FirstPage())
		case key.Matches(msg, keys.Last):
			b.navigate(b.session.LastPage())
		case key.Matches(msg, keys.Search):
			b.searching = true
			b.search.SetValue("")
			return b, b.search.Focus()
		}
	}
	return b, nil
}

func (b *Browser[T]) navigate(changed bool) {
	b.matches = nil
	if !changed {
		b.status = "no more pages"
		return
	}
	b.status = ""
}

func (b *Browser[T]) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		b.searching = false
		b.search.Blur()
		return b, nil
	case tea.KeyEnter:
		b.searching = false
		b.search.Blur()
		b.runSearch(b.search.Value())
		return b, nil
	}
	var cmd tea.Cmd
	b.search, cmd = b.search.Update(msg)
	return b, cmd
}

func (b *Browser[T]) runSearch(value string) {
	r, _ := utf8.DecodeRuneInString(value)
	if value == "" || r == utf8.RuneError {
		b.matches = nil
		b.status = ""
		return
	}
	slots, err := b.session.Slots(r)
	if err != nil {
		b.matches = nil
		b.status = fmt.Sprintf("search failed: %v", err)
		return
	}
	found, _ := b.session.Search(r)
	b.matches = slots
	b.status = fmt.Sprintf("key %q: %d slots, %d filled", r, len(slots), len(found))
}

// Matches returns the slots highlighted by the last search.
func (b *Browser[T]) Matches() []int { return b.matches }

func (b *Browser[T]) renderCell(slot int) string {
	contents := b.session.Contents
	text := "·"
	style := emptyCellStyle
	if !contents.IsEmpty(slot) {
		v, _ := contents.Get(slot)
		text = b.label(v)
		style = cellStyle
	}
	if slices.Contains(b.matches, slot) {
		style = matchCellStyle
	}
	if utf8.RuneCountInString(text) > cellWidth {
		text = string([]rune(text)[:cellWidth-1]) + "…"
	}
	return style.Render(text)
}

func (b *Browser[T]) renderGrid() string {
	rows := make([]string, 0, b.session.Rows())
	for row := range b.session.Rows() {
		cells := make([]string, 0, menu.Width)
		for col := range menu.Width {
			cells = append(cells, b.renderCell(menu.ToSlot(row, col)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b *Browser[T]) View() string {
	p := b.session.Pagination
	title := titleStyle.Render(fmt.Sprintf("%s - page %d/%d", b.session.Title, p.Page(), p.PageCount()))

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(b.renderGrid())
	sb.WriteString("\n")
	if b.searching {
		sb.WriteString("/ " + b.search.View())
	} else {
		sb.WriteString(statusStyle.Render(b.status))
	}
	sb.WriteString("\n")
	sb.WriteString(b.help.View(keys))
	return sb.String()
}

// Run starts the browser on the alternate screen and blocks until it quits.
func Run[T any](s *session.Session[T], label func(T) string) error {
	_, err := tea.NewProgram(New(s, label), tea.WithAltScreen()).Run()
	return err
}
