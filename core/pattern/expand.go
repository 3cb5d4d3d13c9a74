// core/pattern/expand.go
package pattern

// Expand applies wildcard, repetition and ambiguity-code expansion, in that
// order. Expanding an already expanded tree returns an equal tree.
func Expand(atoms []Atom, m Mode) []Atom {
	atoms = ExpandWildcards(atoms, m)
	atoms = ExpandRepetition(atoms)
	return ExpandIUPAC(atoms, m)
}

// MaxExpanded caps the atoms a pattern may expand to once every repetition
// is written out.
const MaxExpanded = 1 << 16

// expandedLen counts the atoms ExpandRepetition would produce, stopping once
// the count passes MaxExpanded.
func expandedLen(atoms []Atom) int {
	n := 0
	for _, a := range atoms {
		w := 1
		if a.Kind == KindGroup {
			w = expandedLen(a.Atoms)
		}
		copies := a.Max
		switch {
		case a.Kind == KindAnchor:
			copies = 1
		case copies == Unbounded:
			copies = a.Min + 1
		}
		n += w * copies
		if n > MaxExpanded {
			return n
		}
	}
	return n
}

// ExpandWildcards turns any literal accepting the alphabet's wildcard code
// (N or X for nucleotides, X for peptides) into the match-any set.
// Negated classes keep their codes.
func ExpandWildcards(atoms []Atom, m Mode) []Atom {
	wild := SetOf(wildcards(m))
	return mapLiterals(atoms, func(a *Atom) {
		if a.Negated || a.Set.IsAny() {
			return
		}
		if !a.Set.Intersect(wild).IsEmpty() {
			a.Set = anySet
		}
	})
}

// ExpandRepetition rewrites every {m,n} repeat as m mandatory copies followed
// by n-m optional copies, or by a single zero-or-more copy when n is open.
// After expansion every atom repeats (1,1), (0,1) or (0,Unbounded).
func ExpandRepetition(atoms []Atom) []Atom {
	var out []Atom
	for _, a := range atoms {
		if a.Kind == KindAnchor {
			out = append(out, a)
			continue
		}
		if a.Kind == KindGroup {
			a.Atoms = ExpandRepetition(a.Atoms)
		}
		if (a.Min == 1 && a.Max == 1) || a.Optional() || a.Star() {
			out = append(out, a)
			continue
		}
		one := a
		one.Min, one.Max = 1, 1
		for i := 0; i < a.Min; i++ {
			out = append(out, copyAtom(one))
		}
		if a.Max == Unbounded {
			star := a
			star.Min, star.Max = 0, Unbounded
			out = append(out, copyAtom(star))
			continue
		}
		opt := a
		opt.Min, opt.Max = 0, 1
		for i := 0; i < a.Max-a.Min; i++ {
			out = append(out, copyAtom(opt))
		}
	}
	return out
}

// ExpandIUPAC replaces ambiguity codes inside every literal with the residues
// they stand for. Sets are bitmaps, so duplicate and nested class members
// collapse to one normalized set.
func ExpandIUPAC(atoms []Atom, m Mode) []Atom {
	codes := codesFor(m)
	return mapLiterals(atoms, func(a *Atom) {
		if a.Set.IsAny() {
			return
		}
		for code, members := range codes {
			if a.Set.Has(code) {
				a.Set.Remove(code)
				a.Set = a.Set.Union(SetOf(members))
			}
		}
	})
}

func mapLiterals(atoms []Atom, fn func(*Atom)) []Atom {
	out := cloneAtoms(atoms)
	var walk func([]Atom)
	walk = func(as []Atom) {
		for i := range as {
			switch as[i].Kind {
			case KindLiteral:
				fn(&as[i])
			case KindGroup:
				walk(as[i].Atoms)
			}
		}
	}
	walk(out)
	return out
}

func copyAtom(a Atom) Atom {
	a.Atoms = cloneAtoms(a.Atoms)
	return a
}
