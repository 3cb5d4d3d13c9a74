// internal/writers/text.go
package writers

import (
	"io"

	"patmatch-core/restrict"
	"patmatch/internal/output"
)

func init() {
	SearchWriters.Register("text", func(w io.Writer, p Search) error {
		return output.WriteHitsTSV(w, p.Result)
	})
	SequenceWriters.Register("text", output.WriteSequenceText)
	RestrictionWriters.Register("text", writeRestrictionText)
}

func writeRestrictionText(w io.Writer, p Restriction) error {
	if p.Class == restrict.NoCut {
		return restrict.WriteNotCut(w, p.Result.NotCut)
	}
	return restrict.WriteCutSites(w, p.Result.Enzymes)
}
