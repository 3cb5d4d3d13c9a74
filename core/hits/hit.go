// core/hits/hit.go
package hits

import (
	"fmt"
	"strconv"
	"strings"
)

// Hit is one resolved match with its annotation.
type Hit struct {
	Name  string
	Begin int // 1-based, inclusive
	End   int // 1-based, inclusive
	Match string
	Count int // final number of hits in this record

	Gene  string
	SGDID string
	Desc  string

	Chromosome string
	ORFs       string
}

func parseRow(row string, kind DatasetKind) (Hit, error) {
	cols := strings.Split(row, "\t")
	want := 7
	if kind == NotFeature {
		want = 6
	}
	if len(cols) != want {
		return Hit{}, &RowParseError{Row: row, Reason: fmt.Sprintf("%d columns, want %d", len(cols), want)}
	}
	var h Hit
	var begin, end string
	if kind == NotFeature {
		h.ORFs, begin, end, h.Match, h.Chromosome, h.Name = strings.TrimSpace(cols[0]), cols[1], cols[2], cols[3], cols[4], cols[5]
	} else {
		h.Name, begin, end, h.Match, h.Gene, h.SGDID, h.Desc = cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], cols[6]
		if h.SGDID != "" && h.Gene == h.Name {
			h.Gene = ""
		}
	}
	var err error
	if h.Begin, err = strconv.Atoi(begin); err != nil {
		return Hit{}, &RowParseError{Row: row, Reason: err.Error()}
	}
	if h.End, err = strconv.Atoi(end); err != nil {
		return Hit{}, &RowParseError{Row: row, Reason: err.Error()}
	}
	return h, nil
}

// ReportLine renders the hit as a report row for kind, without newline.
func (h Hit) ReportLine(kind DatasetKind) string {
	b, e, n := strconv.Itoa(h.Begin), strconv.Itoa(h.End), strconv.Itoa(h.Count)
	switch {
	case kind == NotFeature:
		return strings.Join([]string{h.Chromosome, h.ORFs, n, h.Match, b, e}, "\t")
	case h.SGDID != "":
		return strings.Join([]string{h.Name, h.Gene, n, h.Match, b, e, h.Desc}, "\t")
	}
	return strings.Join([]string{h.Name, n, h.Match, b, e}, "\t")
}
