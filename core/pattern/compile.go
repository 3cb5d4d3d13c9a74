// core/pattern/compile.go
package pattern

import (
	"fmt"
	"strings"
)

// DefaultMinTokens is the shortest pattern accepted without a repetition.
const DefaultMinTokens = 3

// Options configures Compile.
type Options struct {
	Mode      Mode
	MinTokens int // 0 selects DefaultMinTokens; negative disables the check
}

// Compiled is an executable pattern: the expanded atom tree plus the record
// constraints the matcher itself does not enforce.
type Compiled struct {
	Source     string // decoded, normalized input
	Mode       Mode
	Atoms      []Atom
	Begin      bool // match must start at residue 1
	End        bool // match must end at the last residue
	Exclusions []Exclusion
}

// Compile decodes, validates, parses and expands a pattern.
func Compile(text string, opt Options) (*Compiled, error) {
	src := Normalize(DecodeEscapes(text))
	body := strings.TrimSuffix(strings.TrimPrefix(src, "<"), ">")

	alphabet := opt.Mode
	if alphabet == Complement {
		alphabet = Nucleotide
	}
	minTokens := opt.MinTokens
	if minTokens == 0 {
		minTokens = DefaultMinTokens
	}
	if err := Validate(body, alphabet, minTokens); err != nil {
		return nil, err
	}

	atoms, err := Parse(src)
	if err != nil {
		return nil, err
	}
	if expandedLen(atoms) > MaxExpanded {
		return nil, &SyntaxError{Msg: fmt.Sprintf("repetitions expand past %d residues", MaxExpanded)}
	}
	if opt.Mode == Complement {
		atoms = ComplementAtoms(atoms)
	}
	atoms = Expand(atoms, opt.Mode)

	c := &Compiled{Source: src, Mode: opt.Mode, Atoms: atoms}
	for _, a := range atoms {
		if a.Kind != KindAnchor {
			continue
		}
		if a.Anchor == AnchorBegin {
			c.Begin = true
		} else {
			c.End = true
		}
	}
	c.Exclusions = Exclusions(atoms)
	return c, nil
}

// String renders the expanded pattern.
func (c *Compiled) String() string { return Render(c.Atoms) }

// MinWidth is the fewest residues a match can span.
func (c *Compiled) MinWidth() int { return MinWidth(c.Atoms) }

// MaxWidth is the most residues a match can span, or Unbounded.
func (c *Compiled) MaxWidth() int { return MaxWidth(c.Atoms) }

// Literal returns the residue run when every atom is a single fixed residue.
func (c *Compiled) Literal() (string, bool) {
	var b strings.Builder
	for _, a := range c.Atoms {
		switch {
		case a.Kind == KindAnchor:
		case a.Kind == KindLiteral && !a.Negated && a.Min == 1 && a.Max == 1 && a.Set.Len() == 1:
			b.WriteByte(a.Set.Bytes()[0])
		default:
			return "", false
		}
	}
	return b.String(), b.Len() > 0
}

// Fixed reports whether every atom matches exactly one residue, with no
// optional or repeated parts.
func (c *Compiled) Fixed() bool {
	w := c.MaxWidth()
	return w != Unbounded && w == c.MinWidth()
}
