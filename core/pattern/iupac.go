// core/pattern/iupac.go
package pattern

/* -------------------------- ambiguity tables -------------------------- */

var nucleotideCodes = map[byte]string{
	'R': "AG",
	'Y': "CT",
	'S': "GC",
	'W': "AT",
	'M': "AC",
	'K': "GT",
	'V': "ACG",
	'H': "ACT",
	'D': "AGT",
	'B': "CGT",
}

var peptideCodes = map[byte]string{
	'J': "IFVLWMAGCY", // hydrophobic
	'O': "TSHEDQNKR",  // hydrophilic
	'B': "DN",
	'Z': "EQ",
}

/* -------------------------- complement table -------------------------- */

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'}, {'R', 'Y'}, {'M', 'K'},
		{'V', 'B'}, {'H', 'D'},
	}
	for _, p := range pairs {
		complement[p.a] = p.b
		complement[p.b] = p.a
	}
	// S, W, N and anything outside the nucleotide alphabet map to themselves.
}

// ReverseComplement reverse-complements a plain IUPAC string (no DSL syntax).
func ReverseComplement(s string) string {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[upper(s[n-1-i])]
	}
	return string(out)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// wildcards per alphabet
func wildcards(m Mode) string {
	if m == Peptide {
		return "X"
	}
	return "NX"
}

func codesFor(m Mode) map[byte]string {
	if m == Peptide {
		return peptideCodes
	}
	return nucleotideCodes
}
