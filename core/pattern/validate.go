// core/pattern/validate.go
package pattern

import (
	"strings"
	"unicode"
)

var escapes = strings.NewReplacer(
	"%28", "(", "%29", ")",
	"%7B", "{", "%7D", "}", "%7b", "{", "%7d", "}",
	"%5B", "[", "%5D", "]", "%5b", "[", "%5d", "]",
	"%2C", ",", "%2c", ",",
	"%5E", "^", "%5e", "^",
)

// DecodeEscapes decodes the percent-escapes web forms leave in patterns.
func DecodeEscapes(s string) string { return escapes.Replace(s) }

// Normalize drops whitespace and uppercases.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

// CountTokens counts residues outside brackets plus one per bracketed unit.
func CountTokens(p string) int {
	tokens := 0
	counting := true
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '(', '[', '{':
			if counting {
				tokens++
			}
			counting = false
		case ')', ']', '}':
			counting = true
		default:
			if counting {
				tokens++
			}
		}
	}
	return tokens
}

// Validate checks the residue alphabet and the minimum token count of a
// normalized pattern with its anchors removed. Patterns with a repetition
// brace skip the length check. minTokens <= 0 disables it.
func Validate(p string, m Mode, minTokens int) error {
	bad := invalidResidues(m)
	for i := 0; i < len(p); i++ {
		if strings.IndexByte(bad, p[i]) >= 0 {
			return &InvalidResidueError{Residue: p[i], Mode: m}
		}
	}
	if minTokens <= 0 || strings.Contains(p, "{") {
		return nil
	}
	if n := CountTokens(p); n < minTokens {
		return &TooShortError{Tokens: n, Min: minTokens}
	}
	return nil
}
