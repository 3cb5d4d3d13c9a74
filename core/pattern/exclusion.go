// core/pattern/exclusion.go
package pattern

// Exclusion rejects a match whose residue at Offset is in Set.
type Exclusion struct {
	Offset int
	Set    Set
}

// Rejects reports whether matched violates the constraint. Offsets past the
// end of matched never reject.
func (e Exclusion) Rejects(matched []byte) bool {
	return e.Offset < len(matched) && e.Set.Has(upper(matched[e.Offset]))
}

// Exclusions derives one constraint per mandatory negated class. The offset
// is the summed minimum width of everything before the class; classes inside
// a group use the group's first occurrence. Optional negated classes carry no
// constraint since their position in the match is not fixed.
func Exclusions(atoms []Atom) []Exclusion {
	var out []Exclusion
	collectExclusions(atoms, 0, true, &out)
	return out
}

func collectExclusions(atoms []Atom, off int, mandatory bool, out *[]Exclusion) int {
	for _, a := range atoms {
		switch a.Kind {
		case KindLiteral:
			if a.Negated && mandatory && a.Min > 0 {
				*out = append(*out, Exclusion{Offset: off, Set: a.Set})
			}
			off += a.Min
		case KindGroup:
			collectExclusions(a.Atoms, off, mandatory && a.Min > 0, out)
			off += a.Min * MinWidth(a.Atoms)
		}
	}
	return off
}
