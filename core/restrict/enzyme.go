// core/restrict/enzyme.go
package restrict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrEnzymeFile is the parent of every enzyme definition failure.
var ErrEnzymeFile = errors.New("enzyme definitions")

// EnzymeFileError locates a missing or malformed definitions file.
// Line is 0 when the file itself could not be read.
type EnzymeFileError struct {
	Path string
	Line int
	Err  error
}

func (e *EnzymeFileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *EnzymeFileError) Unwrap() error { return e.Err }

func (e *EnzymeFileError) Is(target error) bool { return target == ErrEnzymeFile }

// Enzyme is one restriction enzyme definition.
type Enzyme struct {
	Name     string
	Offset   int    // cut position relative to the site start, Watson strand
	Site     string // recognition pattern, IUPAC codes allowed
	Overhang int
}

// Load parses "name offset site overhang" lines. Blank lines and lines
// starting with '#' are skipped; extra fields are ignored.
func Load(r io.Reader, path string) ([]Enzyme, error) {
	var out []Enzyme
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 4 {
			return nil, &EnzymeFileError{Path: path, Line: n, Err: fmt.Errorf("want 4 fields, got %d", len(f))}
		}
		off, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, &EnzymeFileError{Path: path, Line: n, Err: fmt.Errorf("offset: %w", err)}
		}
		ovh, err := strconv.Atoi(f[3])
		if err != nil {
			return nil, &EnzymeFileError{Path: path, Line: n, Err: fmt.Errorf("overhang: %w", err)}
		}
		out = append(out, Enzyme{Name: f[0], Offset: off, Site: strings.ToUpper(f[2]), Overhang: ovh})
	}
	if err := sc.Err(); err != nil {
		return nil, &EnzymeFileError{Path: path, Err: err}
	}
	if len(out) == 0 {
		return nil, &EnzymeFileError{Path: path, Err: errors.New("no enzymes defined")}
	}
	return out, nil
}

// LoadFile opens and parses a definitions file.
func LoadFile(path string) ([]Enzyme, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &EnzymeFileError{Path: path, Err: err}
	}
	defer fh.Close()
	return Load(fh, path)
}
