// internal/output/sequence.go
package output

import (
	"bufio"
	"io"

	"patmatch/pkg/api"
)

// LineWidth is the residue count per line of text sequence output.
const LineWidth = 60

// WriteSequenceText writes seq as a FASTA record.
func WriteSequenceText(w io.Writer, seq api.SequenceV1) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(seq.Defline)
	bw.WriteByte('\n')
	for i := 0; i < len(seq.Seq); i += LineWidth {
		end := min(i+LineWidth, len(seq.Seq))
		bw.WriteString(seq.Seq[i:end])
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
