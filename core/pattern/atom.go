// core/pattern/atom.go
package pattern

// Unbounded is the Max of an open-ended repetition.
const Unbounded = -1

// Kind discriminates Atom.
type Kind uint8

const (
	KindLiteral Kind = iota // one residue drawn from Set
	KindGroup               // parenthesized sub-pattern
	KindAnchor              // record boundary
)

// AnchorPos identifies which record boundary an anchor pins.
type AnchorPos uint8

const (
	AnchorBegin AnchorPos = iota + 1 // '<'
	AnchorEnd                        // '>'
)

// Atom is one node of a parsed pattern.
//
// A literal carries the residue codes it accepts (or, when Negated, the codes
// it rejects). Every literal and group repeats between Min and Max times;
// Max == Unbounded marks an open repeat, which is distinct from Max == Min.
type Atom struct {
	Kind    Kind
	Set     Set
	Negated bool
	Atoms   []Atom
	Min     int
	Max     int
	Anchor  AnchorPos
}

func literal(codes string) Atom {
	return Atom{Kind: KindLiteral, Set: SetOf(codes), Min: 1, Max: 1}
}

// Matches is the set of residues a literal accepts.
func (a Atom) Matches() Set {
	if a.Negated {
		return anySet.Without(a.Set)
	}
	return a.Set
}

// Optional reports a zero-or-one repeat.
func (a Atom) Optional() bool { return a.Min == 0 && a.Max == 1 }

// Star reports a zero-or-more repeat.
func (a Atom) Star() bool { return a.Min == 0 && a.Max == Unbounded }

// MinWidth is the fewest residues atoms can match.
func MinWidth(atoms []Atom) int {
	n := 0
	for _, a := range atoms {
		switch a.Kind {
		case KindLiteral:
			n += a.Min
		case KindGroup:
			n += a.Min * MinWidth(a.Atoms)
		}
	}
	return n
}

// MaxWidth is the most residues atoms can match, or Unbounded.
func MaxWidth(atoms []Atom) int {
	n := 0
	for _, a := range atoms {
		if a.Kind == KindAnchor {
			continue
		}
		if a.Max == Unbounded {
			return Unbounded
		}
		w := 1
		if a.Kind == KindGroup {
			w = MaxWidth(a.Atoms)
			if w == Unbounded {
				return Unbounded
			}
		}
		n += a.Max * w
	}
	return n
}

func cloneAtoms(atoms []Atom) []Atom {
	if atoms == nil {
		return nil
	}
	out := make([]Atom, len(atoms))
	for i, a := range atoms {
		out[i] = a
		out[i].Atoms = cloneAtoms(a.Atoms)
	}
	return out
}
