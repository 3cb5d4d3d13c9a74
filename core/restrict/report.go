// core/restrict/report.go
package restrict

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// CutSiteHeader is the first row of a cut-site report.
const CutSiteHeader = "Enzyme\toffset (bp)\toverhang (bp)\trecognition sequence\tenzyme type\t" +
	"number of cuts\tordered fragment size\tsorted fragment size\t" +
	"cut site on watson strand\tcut site on crick strand"

// JoinInts renders "1, 2, 3".
func JoinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}

// Row renders the enzyme as a cut-site report row, without newline.
func (r EnzymeResult) Row() string {
	return strings.Join([]string{
		r.Name,
		strconv.Itoa(r.Offset),
		strconv.Itoa(r.Overhang),
		r.Site,
		r.Type,
		strconv.Itoa(r.Cuts()),
		JoinInts(r.Fragments.Ordered),
		JoinInts(r.Fragments.Sorted),
		JoinInts(r.Watson),
		JoinInts(r.Crick),
	}, "\t")
}

// WriteCutSites writes the header and one row per enzyme.
func WriteCutSites(w io.Writer, enzymes []EnzymeResult) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(CutSiteHeader + "\n")
	for _, e := range enzymes {
		bw.WriteString(e.Row())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteNotCut writes one enzyme name per line.
func WriteNotCut(w io.Writer, names []string) error {
	bw := bufio.NewWriter(w)
	for _, n := range names {
		bw.WriteString(n)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
