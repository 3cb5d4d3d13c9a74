// internal/writers/json.go
package writers

import (
	"io"

	"github.com/goccy/go-json"

	"patmatch-core/restrict"
	"patmatch/internal/jsonlutil"
	"patmatch/internal/jsonutil"
	"patmatch/internal/output"
	"patmatch/pkg/api"
)

func init() {
	SearchWriters.Register("json", func(w io.Writer, p Search) error {
		return jsonutil.EncodePretty(w, p.Response)
	})
	SearchWriters.Register("jsonl", func(w io.Writer, p Search) error {
		return jsonlutil.WriteAll(w, p.Response.Hits, func(enc *json.Encoder, h api.HitV1) error {
			return enc.Encode(h)
		}, IsBrokenPipe)
	})

	SequenceWriters.Register("json", func(w io.Writer, s api.SequenceV1) error {
		return jsonutil.EncodePretty(w, s)
	})
	SequenceWriters.Register("jsonl", func(w io.Writer, s api.SequenceV1) error {
		return jsonutil.EncodeLine(w, s)
	})

	RestrictionWriters.Register("json", func(w io.Writer, p Restriction) error {
		return jsonutil.EncodePretty(w, p.Response)
	})
	RestrictionWriters.Register("jsonl", writeRestrictionJSONL)
}

// writeRestrictionJSONL emits one line per reported enzyme; for the no-cut
// class, one line per enzyme without sites.
func writeRestrictionJSONL(w io.Writer, p Restriction) error {
	var lines []api.EnzymeLineV1
	if p.Class == restrict.NoCut {
		for _, n := range p.Result.NotCut {
			lines = append(lines, api.EnzymeLineV1{Enzyme: n})
		}
	} else {
		for _, e := range p.Result.Enzymes {
			lines = append(lines, output.ToAPIEnzymeLine(e))
		}
	}
	return jsonlutil.WriteAll(w, lines, func(enc *json.Encoder, l api.EnzymeLineV1) error {
		return enc.Encode(l)
	}, IsBrokenPipe)
}
