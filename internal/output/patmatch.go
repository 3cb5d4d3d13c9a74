// internal/output/patmatch.go
package output

import (
	"bufio"
	"io"
	"strings"

	"patmatch-core/hits"
	"patmatch/pkg/api"
)

// ToAPIHit converts a domain hit to the stable wire schema (v1).
func ToAPIHit(h hits.Hit) api.HitV1 {
	return api.HitV1{
		SeqName:         h.Name,
		Beg:             h.Begin,
		End:             h.End,
		Count:           h.Count,
		MatchingPattern: h.Match,
		GeneName:        h.Gene,
		SGDID:           h.SGDID,
		Desc:            h.Desc,
		ORFs:            h.ORFs,
		Chr:             h.Chromosome,
	}
}

// ToAPIResponse builds the search response. diags are joined into
// error_message; downloadURL is "" when no report was written.
func ToAPIResponse(res *hits.Result, downloadURL string, diags []string) api.PatmatchResponseV1 {
	out := api.PatmatchResponseV1{
		Hits:         make([]api.HitV1, 0, len(res.Hits)),
		UniqueHits:   res.Unique,
		TotalHits:    res.Total,
		DownloadURL:  downloadURL,
		ErrorMessage: strings.Join(diags, "\n"),
		Kind:         res.Kind.String(),
	}
	for _, h := range res.Hits {
		out.Hits = append(out.Hits, ToAPIHit(h))
	}
	return out
}

// WriteHitsTSV writes the report header for the dataset kind and one line
// per hit. The downloadable report has the same content.
func WriteHitsTSV(w io.Writer, res *hits.Result) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(res.Kind.Header())
	bw.WriteByte('\n')
	for _, h := range res.Hits {
		bw.WriteString(h.ReportLine(res.Kind))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
