// core/pattern/render.go
package pattern

import (
	"strconv"
	"strings"
)

// Render prints atoms back as DSL text. Class members print in byte order
// and the match-any set prints as X.
func Render(atoms []Atom) string {
	var b strings.Builder
	render(&b, atoms)
	return b.String()
}

func render(b *strings.Builder, atoms []Atom) {
	for _, a := range atoms {
		switch a.Kind {
		case KindAnchor:
			if a.Anchor == AnchorBegin {
				b.WriteByte('<')
			} else {
				b.WriteByte('>')
			}
			continue
		case KindGroup:
			b.WriteByte('(')
			render(b, a.Atoms)
			b.WriteByte(')')
		case KindLiteral:
			switch {
			case a.Set.IsAny():
				b.WriteByte('X')
			case a.Set.Len() == 1 && !a.Negated:
				b.Write(a.Set.Bytes())
			default:
				b.WriteByte('[')
				if a.Negated {
					b.WriteByte('^')
				}
				b.Write(a.Set.Bytes())
				b.WriteByte(']')
			}
		}
		writeRepeat(b, a.Min, a.Max)
	}
}

func writeRepeat(b *strings.Builder, lo, hi int) {
	switch {
	case lo == 1 && hi == 1:
		return
	case lo == hi:
		b.WriteString("{" + strconv.Itoa(lo) + "}")
	case hi == Unbounded:
		b.WriteString("{" + strconv.Itoa(lo) + ",}")
	case lo == 0:
		b.WriteString("{," + strconv.Itoa(hi) + "}")
	default:
		b.WriteString("{" + strconv.Itoa(lo) + "," + strconv.Itoa(hi) + "}")
	}
}
