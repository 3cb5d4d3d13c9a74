// core/restrict/class.go
package restrict

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Class selects which enzymes a request reports.
type Class int

const (
	All Class = iota
	ThreePrime
	FivePrime
	Blunt
	SixBase
	CutOnce
	CutTwice
	NoCut
)

// Enzyme type labels, as reported per enzyme.
const (
	TypeThreePrime = "3' overhang"
	TypeFivePrime  = "5' overhang"
	TypeBlunt      = "blunt end"
)

var classNames = map[Class]string{
	All:        "all",
	ThreePrime: TypeThreePrime,
	FivePrime:  TypeFivePrime,
	Blunt:      TypeBlunt,
	SixBase:    "Six-base cutters",
	CutOnce:    "enzymes that cut once",
	CutTwice:   "enzymes that cut twice",
	NoCut:      "enzymes that do not cut",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ParseClass accepts the class labels, with form-encoded spellings
// ("3'+overhang", "3%27 overhang") and short forms ("3", "blunt", "once").
func ParseClass(s string) (Class, error) {
	v := strings.ReplaceAll(s, "%27", "'")
	v = strings.TrimSpace(strings.ReplaceAll(v, "+", " "))
	low := strings.ToLower(v)
	switch {
	case low == "" || low == "all":
		return All, nil
	case strings.HasPrefix(low, "enzymes that do not") || low == "none" || strings.ReplaceAll(low, "-", "") == "nocut":
		return NoCut, nil
	case strings.HasPrefix(low, "six"):
		return SixBase, nil
	case strings.Contains(low, "twice"):
		return CutTwice, nil
	case strings.Contains(low, "once"):
		return CutOnce, nil
	case strings.Contains(low, "blunt"):
		return Blunt, nil
	case strings.HasPrefix(low, "3"):
		return ThreePrime, nil
	case strings.HasPrefix(low, "5"):
		return FivePrime, nil
	}
	return All, fmt.Errorf("unknown enzyme class %q", s)
}

// File is the definitions file holding the enzymes of the class.
func (c Class) File() string {
	switch c {
	case SixBase:
		return "rest_enzymes.6base"
	case Blunt:
		return "rest_enzymes.blunt"
	case ThreePrime:
		return "rest_enzymes.3"
	case FivePrime:
		return "rest_enzymes.5"
	}
	return "rest_enzymes"
}

// Subtype is the enzyme type a class filters on, or "".
func (c Class) Subtype() string {
	switch c {
	case ThreePrime:
		return TypeThreePrime
	case FivePrime:
		return TypeFivePrime
	case Blunt:
		return TypeBlunt
	}
	return ""
}

// CutLimit is the cut count a class filters on, or 0.
func (c Class) CutLimit() int {
	switch c {
	case CutOnce:
		return 1
	case CutTwice:
		return 2
	}
	return 0
}

// Catalog is the read-only enzyme data of one directory.
type Catalog struct {
	Dir   string
	Types map[string]string // enzyme name -> type label
}

// LoadTypes builds the name -> type table from the .3, .5 and .blunt files
// in dir. Missing files contribute nothing.
func LoadTypes(dir string) (map[string]string, error) {
	types := make(map[string]string)
	for _, c := range []Class{ThreePrime, FivePrime, Blunt} {
		path := filepath.Join(dir, c.File())
		fh, err := os.Open(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, &EnzymeFileError{Path: path, Err: err}
		}
		sc := bufio.NewScanner(fh)
		for sc.Scan() {
			if f := strings.Fields(sc.Text()); len(f) > 0 {
				types[f[0]] = c.Subtype()
			}
		}
		err = sc.Err()
		fh.Close()
		if err != nil {
			return nil, &EnzymeFileError{Path: path, Err: err}
		}
	}
	return types, nil
}

// LoadCatalog reads the type table of dir.
func LoadCatalog(dir string) (*Catalog, error) {
	types, err := LoadTypes(dir)
	if err != nil {
		return nil, err
	}
	return &Catalog{Dir: dir, Types: types}, nil
}

// Enzymes loads the definitions file of class c.
func (cat *Catalog) Enzymes(c Class) ([]Enzyme, error) {
	return LoadFile(filepath.Join(cat.Dir, c.File()))
}
