package layout

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/go-mclib/data/pkg/data/items"
	"github.com/go-mclib/menus/pkg/inventory"
	"github.com/go-mclib/menus/pkg/menu"
	"github.com/go-mclib/menus/pkg/session"
	"gopkg.in/yaml.v3"
)

// Layout is a menu definition loaded from YAML, e.g.
//
//	title: Shop
//	rows: 3
//	pattern:
//	  - "#########"
//	  - "#.......#"
//	  - "#########"
//	fill:
//	  "#": minecraft:gray_stained_glass_pane
//	iterator:
//	  attach: "."
//	items:
//	  - name: minecraft:diamond
//	    count: 3
type Layout struct {
	Title        string            `yaml:"title"`
	Rows         int               `yaml:"rows"`
	Pattern      []string          `yaml:"pattern,omitempty"`
	Fill         map[string]string `yaml:"fill,omitempty"` // pattern key -> item name
	Iterator     *IteratorConfig   `yaml:"iterator,omitempty"`
	ItemsPerPage int               `yaml:"items_per_page,omitempty"` // 0 = derive from the iterator
	Items        []ItemConfig      `yaml:"items"`
}

// IteratorConfig describes the slot iterator. Slot wins over Row/Column.
type IteratorConfig struct {
	Slot      *int   `yaml:"slot,omitempty"`
	Row       *int   `yaml:"row,omitempty"`
	Column    *int   `yaml:"column,omitempty"`
	Direction string `yaml:"direction,omitempty"` // horizontal (default) or vertical
	Blacklist []int  `yaml:"blacklist,omitempty"`
	Override  bool   `yaml:"override,omitempty"`
	Attach    string `yaml:"attach,omitempty"` // restrict to this pattern key
}

type ItemConfig struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count,omitempty"` // default 1
}

// Load reads and validates a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: key %q must be a single character", menu.ErrInvalidArgument, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Validate reports the first problem in the layout.
func (l *Layout) Validate() error {
	if l.Rows < menu.MinRows || l.Rows > menu.MaxRows {
		return fmt.Errorf("%w: rows %d not in [%d, %d]", menu.ErrInvalidArgument, l.Rows, menu.MinRows, menu.MaxRows)
	}
	if len(l.Pattern) > l.Rows {
		return fmt.Errorf("%w: %d pattern lines for %d rows", menu.ErrInvalidPattern, len(l.Pattern), l.Rows)
	}
	if len(l.Pattern) > 0 {
		if _, err := l.BuildPattern(); err != nil {
			return err
		}
	}
	for key := range l.Fill {
		if _, err := singleRune(key); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}
	if l.ItemsPerPage < 0 {
		return fmt.Errorf("%w: items_per_page %d", menu.ErrInvalidArgument, l.ItemsPerPage)
	}
	if _, err := l.BuildIterator(); err != nil {
		return err
	}
	for i, item := range l.Items {
		if item.Name == "" {
			return fmt.Errorf("%w: items[%d] has no name", menu.ErrInvalidArgument, i)
		}
		if item.Count < 0 {
			return fmt.Errorf("%w: items[%d] count %d", menu.ErrInvalidArgument, i, item.Count)
		}
	}
	return nil
}

// BuildPattern returns the layout pattern, or ErrPatternNotDefined when
// the layout has none.
func (l *Layout) BuildPattern() (*menu.Pattern, error) {
	if len(l.Pattern) == 0 {
		return nil, menu.ErrPatternNotDefined
	}
	p := menu.NewPattern()
	if err := p.Define(l.Pattern...); err != nil {
		return nil, err
	}
	return p, nil
}

// BuildIterator returns the configured slot iterator (horizontal from
// slot 0 when the layout has no iterator section).
func (l *Layout) BuildIterator() (*menu.SlotIterator, error) {
	b := menu.NewSlotIterator()
	cfg := l.Iterator
	if cfg == nil {
		return b.Build()
	}
	if cfg.Slot != nil {
		b.StartPosition(*cfg.Slot)
	}
	if cfg.Row != nil || cfg.Column != nil {
		var row, col int
		if cfg.Row != nil {
			row = *cfg.Row
		}
		if cfg.Column != nil {
			col = *cfg.Column
		}
		b.StartAt(row, col)
	}
	dir, err := menu.ParseDirection(cfg.Direction)
	if err != nil {
		return nil, err
	}
	b.Direction(dir).Blacklist(cfg.Blacklist...).Override(cfg.Override)

	if cfg.Attach != "" {
		key, err := singleRune(cfg.Attach)
		if err != nil {
			return nil, fmt.Errorf("iterator: %w", err)
		}
		ip, err := menu.NewIteratorPattern().Define(l.Pattern...).Attach(key).Build()
		if err != nil {
			return nil, fmt.Errorf("iterator: %w", err)
		}
		b.WithPattern(ip)
	}
	return b.Build()
}

// Stacks resolves the item list.
func (l *Layout) Stacks() ([]*items.ItemStack, error) {
	result := make([]*items.ItemStack, 0, len(l.Items))
	for _, item := range l.Items {
		n := item.Count
		if n == 0 {
			n = 1
		}
		s, err := inventory.Stack(item.Name, n)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// Provider returns a session provider that decorates the grid from the
// pattern and fill map, binds the iterator and buffers the items.
func (l *Layout) Provider() (session.Provider[*items.ItemStack], error) {
	it, err := l.BuildIterator()
	if err != nil {
		return nil, err
	}
	stacks, err := l.Stacks()
	if err != nil {
		return nil, err
	}
	var pattern *menu.Pattern
	if len(l.Pattern) > 0 {
		if pattern, err = l.BuildPattern(); err != nil {
			return nil, err
		}
		if pattern.Rows() > l.Rows {
			return nil, fmt.Errorf("%w: %d pattern lines for %d rows", menu.ErrInvalidPattern, pattern.Rows(), l.Rows)
		}
	}
	fill := make(map[rune]*items.ItemStack, len(l.Fill))
	for key, name := range l.Fill {
		r, err := singleRune(key)
		if err != nil {
			return nil, err
		}
		s, err := inventory.Stack(name, 1)
		if err != nil {
			return nil, fmt.Errorf("fill %q: %w", key, err)
		}
		fill[r] = s
	}
	if len(fill) > 0 && pattern == nil {
		return nil, fmt.Errorf("fill: %w", menu.ErrPatternNotDefined)
	}

	return session.ProviderFunc[*items.ItemStack](func(s *session.Session[*items.ItemStack]) {
		s.Pattern = pattern
		for key, stack := range fill {
			if err := menu.SetByKey(pattern, s.Contents, key, stack); err != nil {
				s.Logf("menu: %q fill skipped: %v", s.Title, err)
			}
		}
		if l.ItemsPerPage > 0 {
			_ = s.Pagination.SetItemsPerPage(l.ItemsPerPage)
		}
		s.Pagination.SetIterator(it)
		s.Pagination.AddItem(stacks...)
	}), nil
}

// Open opens the layout as a new session on m.
func (l *Layout) Open(m *session.Manager[*items.ItemStack]) (*session.Session[*items.ItemStack], error) {
	p, err := l.Provider()
	if err != nil {
		return nil, err
	}
	return m.Open(l.Title, l.Rows, p)
}
