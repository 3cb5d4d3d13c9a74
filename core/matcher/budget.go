// core/matcher/budget.go
package matcher

import (
	"fmt"
	"strconv"
	"strings"
)

// Kinds is a bit set of enabled edit operations.
type Kinds uint8

const (
	Insertion    Kinds = 1 << iota // extra residue in the text
	Deletion                       // pattern residue missing from the text
	Substitution                   // residue replaced
	AllKinds     = Insertion | Deletion | Substitution
)

func (k Kinds) Has(o Kinds) bool { return k&o != 0 }

func (k Kinds) String() string {
	var b strings.Builder
	if k.Has(Insertion) {
		b.WriteByte('i')
	}
	if k.Has(Deletion) {
		b.WriteByte('d')
	}
	if k.Has(Substitution) {
		b.WriteByte('s')
	}
	return b.String()
}

// Budget bounds the combined number of edits a match may carry.
type Budget struct {
	Max   int
	Kinds Kinds
}

// Exact is the zero-error budget.
var Exact = Budget{Kinds: AllKinds}

func (b Budget) String() string { return strconv.Itoa(b.Max) + b.Kinds.String() }

// ParseMismatch reads "<digits><subset of ids>". Missing digits mean 0 and
// an empty subset enables every kind.
func ParseMismatch(opt string) (Budget, error) {
	opt = strings.TrimSpace(opt)
	i := 0
	for i < len(opt) && opt[i] >= '0' && opt[i] <= '9' {
		i++
	}
	var b Budget
	if i > 0 {
		n, err := strconv.Atoi(opt[:i])
		if err != nil {
			return Budget{}, fmt.Errorf("mismatch option %q: %w", opt, err)
		}
		b.Max = n
	}
	for _, c := range opt[i:] {
		switch c {
		case 'i', 'I':
			b.Kinds |= Insertion
		case 'd', 'D':
			b.Kinds |= Deletion
		case 's', 'S':
			b.Kinds |= Substitution
		default:
			return Budget{}, fmt.Errorf("mismatch option %q: unknown error kind %q", opt, c)
		}
	}
	if b.Kinds == 0 {
		b.Kinds = AllKinds
	}
	return b, nil
}
