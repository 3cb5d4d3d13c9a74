// core/pattern/errors.go
package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is matched (errors.Is) by every rejection from Compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// InvalidResidueError reports a residue code outside the alphabet of the mode.
type InvalidResidueError struct {
	Residue byte
	Mode    Mode
}

func (e *InvalidResidueError) Error() string {
	kind := "nucleotide"
	if e.Mode == Peptide {
		kind = "peptide"
	}
	return fmt.Sprintf("Invalid %s character %q found in pattern.", kind, e.Residue)
}

func (e *InvalidResidueError) Is(target error) bool { return target == ErrInvalidPattern }

// TooShortError reports a pattern with fewer tokens than the minimum.
type TooShortError struct {
	Tokens, Min int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("Your pattern is shorter than the minimum number of %d residues.", e.Min)
}

func (e *TooShortError) Is(target error) bool { return target == ErrInvalidPattern }

// SyntaxError reports malformed DSL text.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pattern syntax error at %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrInvalidPattern }
