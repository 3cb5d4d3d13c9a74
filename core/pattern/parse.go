// core/pattern/parse.go
package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns normalized DSL text into an atom tree. Residue codes are kept
// as written; wildcard, IUPAC and repetition expansion happen later.
//
//	pattern := ['<'] seq ['>']
//	seq     := { item }
//	item    := primary [ '{' [m] [',' [n]] '}' ]
//	primary := residue | '[' ['^'] residue+ ']' | '(' seq ')'
func Parse(text string) ([]Atom, error) {
	p := &parser{src: text}
	var out []Atom
	if p.peek() == '<' {
		p.pos++
		out = append(out, Atom{Kind: KindAnchor, Anchor: AnchorBegin})
	}
	seq, err := p.seq(0)
	if err != nil {
		return nil, err
	}
	out = append(out, seq...)
	if p.peek() == '>' {
		p.pos++
		out = append(out, Atom{Kind: KindAnchor, Anchor: AnchorEnd})
	}
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos])
	}
	return out, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) errorf(msg string, args ...any) error {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf(msg, args...)}
}

func (p *parser) seq(depth int) ([]Atom, error) {
	var out []Atom
	for {
		c := p.peek()
		switch {
		case c == 0, c == ')', c == '>' && depth == 0:
			return out, nil
		case c == '(':
			p.pos++
			body, err := p.seq(depth + 1)
			if err != nil {
				return nil, err
			}
			if p.peek() != ')' {
				return nil, p.errorf("unclosed group")
			}
			p.pos++
			if len(body) == 0 {
				return nil, p.errorf("empty group")
			}
			a := Atom{Kind: KindGroup, Atoms: body, Min: 1, Max: 1}
			if err := p.repeat(&a); err != nil {
				return nil, err
			}
			out = append(out, a)
		case c == '[':
			a, err := p.class()
			if err != nil {
				return nil, err
			}
			if err := p.repeat(&a); err != nil {
				return nil, err
			}
			out = append(out, a)
		case isResidue(c):
			p.pos++
			a := literal(string(c))
			if err := p.repeat(&a); err != nil {
				return nil, err
			}
			out = append(out, a)
		default:
			return nil, p.errorf("unexpected %q", c)
		}
	}
}

// class reads [..] or [^..]. Nested brackets are flattened into one set.
func (p *parser) class() (Atom, error) {
	p.pos++ // '['
	a := Atom{Kind: KindLiteral, Min: 1, Max: 1}
	if p.peek() == '^' {
		a.Negated = true
		p.pos++
	}
	depth := 1
	for depth > 0 {
		c := p.peek()
		switch {
		case c == 0:
			return Atom{}, p.errorf("unclosed class")
		case c == '[':
			depth++
		case c == ']':
			depth--
		case isResidue(c):
			a.Set.Add(c)
		default:
			return Atom{}, p.errorf("unexpected %q in class", c)
		}
		p.pos++
	}
	if a.Set.IsEmpty() {
		return Atom{}, p.errorf("empty class")
	}
	return a, nil
}

func (p *parser) repeat(a *Atom) error {
	if p.peek() != '{' {
		return nil
	}
	start := p.pos
	end := strings.IndexByte(p.src[start:], '}')
	if end < 0 {
		return p.errorf("unclosed repetition")
	}
	body := p.src[start+1 : start+end]
	p.pos = start + end + 1

	lo, hi, ok := parseBounds(body)
	if !ok {
		p.pos = start
		return p.errorf("bad repetition {%s}", body)
	}
	a.Min, a.Max = lo, hi
	return nil
}

// MaxRepeat is the largest count a {m,n} repetition may name.
const MaxRepeat = 1000

// parseBounds reads "m", "m,", ",n" or "m,n".
func parseBounds(body string) (lo, hi int, ok bool) {
	num := func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil && n >= 0 && n <= MaxRepeat
	}
	left, right, comma := strings.Cut(body, ",")
	switch {
	case !comma:
		n, ok := num(left)
		return n, n, ok && n > 0
	case left == "" && right == "":
		return 0, 0, false
	case left == "":
		n, ok := num(right)
		return 0, n, ok && n > 0
	case right == "":
		n, ok := num(left)
		return n, Unbounded, ok
	}
	m, ok1 := num(left)
	n, ok2 := num(right)
	return m, n, ok1 && ok2 && m <= n && n > 0
}

func isResidue(c byte) bool { return c >= 'A' && c <= 'Z' || c == '*' }
