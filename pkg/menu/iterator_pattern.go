package menu

import "fmt"

// IteratorPattern restricts a SlotIterator to the slots holding one attached key.
type IteratorPattern struct {
	pattern *Pattern
	key     rune
}

// IteratorPatternBuilder collects lines and the attached key. The first
// definition error is kept and reported by Build.
type IteratorPatternBuilder struct {
	pattern  Pattern
	key      rune
	attached bool
	err      error
}

func NewIteratorPattern() *IteratorPatternBuilder {
	return &IteratorPatternBuilder{}
}

func (b *IteratorPatternBuilder) Define(lines ...string) *IteratorPatternBuilder {
	if b.err == nil {
		b.err = b.pattern.Define(lines...)
	}
	return b
}

func (b *IteratorPatternBuilder) DefineRepeat(line string, amount int) *IteratorPatternBuilder {
	if b.err == nil {
		b.err = b.pattern.DefineRepeat(line, amount)
	}
	return b
}

func (b *IteratorPatternBuilder) Attach(key rune) *IteratorPatternBuilder {
	b.key = key
	b.attached = true
	return b
}

func (b *IteratorPatternBuilder) Build() (*IteratorPattern, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.pattern.Defined() {
		return nil, ErrPatternNotDefined
	}
	if !b.attached {
		return nil, ErrNoFrameAttached
	}
	if !b.pattern.Contains(b.key) {
		return nil, fmt.Errorf("%w: key %q", ErrFrameNotFound, b.key)
	}
	lines := &Pattern{}
	if err := lines.Define(b.pattern.Lines()...); err != nil {
		return nil, err
	}
	return &IteratorPattern{pattern: lines, key: b.key}, nil
}

func (ip *IteratorPattern) Key() rune { return ip.key }

// Lines returns a copy of the underlying layout.
func (ip *IteratorPattern) Lines() []string { return ip.pattern.Lines() }

// Matches reports whether slot holds the attached key.
func (ip *IteratorPattern) Matches(slot int) bool {
	k, ok := ip.pattern.KeyAt(slot)
	return ok && k == ip.key
}
