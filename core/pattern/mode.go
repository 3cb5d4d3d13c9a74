// core/pattern/mode.go
package pattern

import "fmt"

// Mode selects the residue alphabet and strand of a compilation.
type Mode int

const (
	Nucleotide Mode = iota
	Peptide
	Complement // reverse-complemented nucleotide pattern
)

func (m Mode) String() string {
	switch m {
	case Nucleotide:
		return "nucleotide"
	case Peptide:
		return "peptide"
	case Complement:
		return "complement"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// invalidResidues lists the pattern letters rejected per alphabet.
func invalidResidues(m Mode) string {
	if m == Peptide {
		return "U"
	}
	return "EFIJLOPQZ"
}
