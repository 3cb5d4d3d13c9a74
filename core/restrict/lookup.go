// core/restrict/lookup.go
package restrict

import (
	"context"
	"errors"
	"strings"

	"patmatch-core/fasta"
)

// GenomicFile is the record set sequences are looked up in.
const GenomicFile = "orf_genomic.seq"

// UnnamedDefline heads sequences supplied directly.
const UnnamedDefline = ">Unnamed sequence"

// Sequence is an analysis input.
type Sequence struct {
	Defline   string
	Residues  []byte
	Name      string // "GENE/SYSTEMATIC", "SYSTEMATIC" or "Unnamed"
	ChrCoords string
}

// Describe derives the display name and chromosome coordinates from an SGD
// style defline:
//
//	>YAL067C SEO1 SGDID:S000000062, Chr I from 9016-7235, Genome Release 64-3-1, ...
func Describe(defline string, residues []byte) Sequence {
	s := Sequence{Defline: defline, Residues: residues, Name: "Unnamed"}
	if !strings.Contains(defline, "SGDID:") || !strings.Contains(defline, "Genome Release") {
		return s
	}
	parts := strings.Fields(strings.ReplaceAll(defline, ">", ""))
	if len(parts) == 0 {
		return s
	}
	s.Name = parts[0]
	if len(parts) > 1 && !strings.HasPrefix(parts[1], "SGDID:") {
		s.Name = parts[1] + "/" + parts[0]
	}
	if _, after, ok := strings.Cut(defline, ", "); ok {
		s.ChrCoords, _, _ = strings.Cut(after, ", ")
	}
	return s
}

// Raw wraps residues typed by a user; everything but letters is dropped.
func Raw(text string) Sequence {
	clean := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			clean = append(clean, c)
		}
	}
	return Describe(UnnamedDefline, clean)
}

// matchesName compares name against the systematic name, the gene name and
// the SGDID of a defline, ignoring case.
func matchesName(defline, name string) bool {
	parts := strings.Fields(defline)
	cands := make([]string, 0, 3)
	if len(parts) > 0 {
		cands = append(cands, strings.TrimPrefix(parts[0], ">"))
	}
	if len(parts) > 1 {
		cands = append(cands, parts[1])
	}
	if len(parts) > 2 {
		cands = append(cands, strings.NewReplacer("SGDID:", "", ",", "").Replace(parts[2]))
	}
	for _, c := range cands {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

var errFound = errors.New("found")

// Find streams path for the first record named name. ok is false when no
// record matches.
func Find(ctx context.Context, path, name string) (seq Sequence, ok bool, err error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, "SGD:", ""))
	if name == "" {
		return Sequence{}, false, nil
	}
	err = fasta.StreamRecordsPathCtx(ctx, path, func(r fasta.Record) error {
		if !matchesName(r.Defline, name) {
			return nil
		}
		seq, ok = Describe(r.Defline, r.Seq), true
		return errFound
	})
	if errors.Is(err, errFound) {
		err = nil
	}
	return seq, ok, err
}
