// core/hits/annotate.go
package hits

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"patmatch-core/seqindex"
)

// Locus annotates a feature record.
type Locus struct {
	Gene  string
	SGDID string
	Desc  string
}

// LoadLocus reads tab-separated "name gene sgdid [description]" lines.
// Lines with fewer than three fields are ignored.
func LoadLocus(r io.Reader) (map[string]Locus, error) {
	out := make(map[string]Locus)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		pieces := strings.Split(strings.TrimSpace(sc.Text()), "\t")
		if len(pieces) < 3 {
			continue
		}
		l := Locus{Gene: pieces[1], SGDID: pieces[2]}
		if len(pieces) > 3 {
			l.Desc = pieces[3]
		}
		out[pieces[0]] = l
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("locus scan: %w", err)
	}
	return out, nil
}

// LoadLocusFile is LoadLocus over a file. A missing file yields an empty map.
func LoadLocusFile(path string) (map[string]Locus, error) {
	fh, err := os.Open(path)
	if os.IsNotExist(err) {
		return map[string]Locus{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return LoadLocus(fh)
}

// Region annotates an inter-ORF record.
type Region struct {
	Chromosome string
	ORFs       string // "YAL068C - YAL067W-A"
	Start      int    // chromosome coordinate of residue 1
}

// RegionFromRecord parses a defline such as
//
//	>A:2170-2479, Chr I from 2170-2479, Genome Release 64-3-1, between YAL068C and YAL067W-A
//
// ok is false when the name carries no coordinates or the defline lacks the
// chromosome or the flanking ORFs.
func RegionFromRecord(rec seqindex.Record) (Region, bool) {
	name := rec.CanonicalName()
	_, coords, found := strings.Cut(name, ":")
	if !found {
		return Region{}, false
	}
	startText, _, _ := strings.Cut(coords, "-")
	start, err := strconv.Atoi(startText)
	if err != nil {
		return Region{}, false
	}
	pieces := strings.Split(strings.TrimPrefix(rec.Defline, ">"), " ")
	_, between, hasBetween := strings.Cut(rec.Defline, "between ")
	if len(pieces) <= 2 || !hasBetween {
		return Region{}, false
	}
	return Region{
		Chromosome: pieces[2],
		ORFs:       strings.TrimSpace(strings.ReplaceAll(between, "and", "-")),
		Start:      start,
	}, true
}
