// core/matcher/matcher.go
package matcher

import (
	"context"
	"fmt"

	"patmatch-core/pattern"
)

var upperTab [256]byte

func init() {
	for i := range upperTab {
		upperTab[i] = byte(i)
	}
	for c := 'a'; c <= 'z'; c++ {
		upperTab[c] = byte(c - 'a' + 'A')
	}
}

// isBreak marks line breaks: no match spans them, not even as an edit.
func isBreak(b byte) bool { return b == '\n' || b == '\r' }

// Span is one match in the coordinate space of the searched text.
// Text aliases the searched buffer.
type Span struct {
	Start  int // 0-based, inclusive
	End    int // exclusive
	Text   []byte
	Errors int
}

// String renders the span with a 1-based start and inclusive end.
func (s Span) String() string { return fmt.Sprintf("[%d, %d]: %s", s.Start+1, s.End, s.Text) }

// Matcher runs one compiled pattern under an edit budget. It is immutable
// and safe for concurrent use; each Search allocates its own state.
type Matcher struct {
	budget Budget
	prog   *program
	fixed  []pattern.Set // per-position sets when exact fixed-width matching applies
}

// New prepares c for searching. A pattern that cannot be turned into a
// program degrades to exact literal matching of its source text.
func New(c *pattern.Compiled, b Budget) *Matcher {
	if b.Kinds == 0 {
		b.Kinds = AllKinds
	}
	if b.Max < 0 {
		b.Max = 0
	}
	prog, err := buildProgram(c.Atoms)
	if err != nil {
		return Literal(c.Source)
	}
	m := &Matcher{budget: b, prog: prog}
	if b.Max == 0 && c.Fixed() {
		m.fixed = fixedSets(c.Atoms)
	}
	return m
}

// Literal matches text exactly, residue for residue, ignoring case.
func Literal(text string) *Matcher {
	m := &Matcher{budget: Exact}
	for i := 0; i < len(text); i++ {
		m.fixed = append(m.fixed, pattern.SetOf(string(upperTab[text[i]])))
	}
	return m
}

// Budget returns the edit budget in effect.
func (m *Matcher) Budget() Budget { return m.budget }

func fixedSets(atoms []pattern.Atom) []pattern.Set {
	var out []pattern.Set
	for _, a := range pattern.ExpandRepetition(atoms) {
		switch a.Kind {
		case pattern.KindLiteral:
			out = append(out, a.Matches())
		case pattern.KindGroup:
			out = append(out, fixedSets(a.Atoms)...)
		}
	}
	return out
}

// Search returns a lazy iterator over every match in text, at most one per
// start position, in start order. base is added to reported offsets.
func (m *Matcher) Search(ctx context.Context, text []byte, base int) *Iter {
	it := &Iter{ctx: ctx, m: m, text: text, base: base}
	if m.fixed == nil && m.prog != nil {
		it.sim = newSim(ctx, m.prog, m.budget)
	}
	return it
}

// All drains Search.
func (m *Matcher) All(ctx context.Context, text []byte, base int) ([]Span, error) {
	var out []Span
	it := m.Search(ctx, text, base)
	for it.Next() {
		out = append(out, it.Span())
	}
	return out, it.Err()
}

// Iter yields spans one at a time. It cannot be rewound.
type Iter struct {
	ctx  context.Context
	m    *Matcher
	sim  *sim
	text []byte
	base int
	pos  int
	cur  Span
	err  error
}

// checkEvery is how many start positions, or residues consumed by one
// anchored attempt, pass between context polls.
const checkEvery = 4096

// Next advances to the next match. It returns false at the end of the text
// or when the context is done; see Err.
func (it *Iter) Next() bool {
	for it.pos < len(it.text) {
		if it.pos%checkEvery == 0 {
			if err := it.ctx.Err(); err != nil {
				return it.stop(err)
			}
		}
		s := it.pos
		it.pos++
		var (
			end, errs int
			ok        bool
		)
		if it.sim != nil {
			end, errs, ok = it.sim.best(it.text, s)
			if it.sim.err != nil {
				return it.stop(it.sim.err)
			}
		} else {
			end, ok = matchFixed(it.text, s, it.m.fixed)
		}
		if ok {
			it.cur = Span{Start: it.base + s, End: it.base + end, Text: it.text[s:end], Errors: errs}
			return true
		}
	}
	return false
}

func (it *Iter) stop(err error) bool {
	it.err = err
	it.pos = len(it.text)
	return false
}

func (it *Iter) Span() Span { return it.cur }
func (it *Iter) Err() error { return it.err }

func matchFixed(text []byte, start int, sets []pattern.Set) (int, bool) {
	end := start + len(sets)
	if len(sets) == 0 || end > len(text) {
		return 0, false
	}
	for j, set := range sets {
		if !set.Has(upperTab[text[start+j]]) {
			return 0, false
		}
	}
	return end, true
}
