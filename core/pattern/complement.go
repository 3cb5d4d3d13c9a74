// core/pattern/complement.go
package pattern

// ComplementAtoms reverse-complements a parsed tree: atom order is mirrored
// at every nesting level, residue codes are complemented, repeats stay with
// their atom, and the '<' / '>' anchors trade places.
func ComplementAtoms(atoms []Atom) []Atom {
	out := make([]Atom, len(atoms))
	for i, a := range atoms {
		j := len(atoms) - 1 - i
		switch a.Kind {
		case KindLiteral:
			a.Set = complementSet(a.Set)
		case KindGroup:
			a.Atoms = ComplementAtoms(a.Atoms)
		case KindAnchor:
			if a.Anchor == AnchorBegin {
				a.Anchor = AnchorEnd
			} else {
				a.Anchor = AnchorBegin
			}
		}
		out[j] = a
	}
	return out
}

func complementSet(s Set) Set {
	if s.IsAny() {
		return s
	}
	var out Set
	for _, c := range s.Bytes() {
		out.Add(complement[c])
	}
	return out
}
