// internal/config/request.go
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"patmatch-core/hits"
	"patmatch-core/matcher"
	"patmatch-core/pattern"
	"patmatch-core/restrict"
)

// Strand selects which strands a nucleotide search covers.
type Strand int

const (
	BothStrands Strand = iota
	WatsonOnly
	CrickOnly
)

func (s Strand) String() string {
	switch s {
	case WatsonOnly:
		return "watson"
	case CrickOnly:
		return "crick"
	}
	return "both"
}

// ParseStrand accepts "both", "watson", "crick" and the web form labels
// ("Both strands", "Forward (Watson) strand", "Reverse (Crick) strand").
func ParseStrand(s string) (Strand, error) {
	low := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "+", " ")))
	switch {
	case low == "" || strings.HasPrefix(low, "both"):
		return BothStrands, nil
	case strings.Contains(low, "watson") || strings.HasPrefix(low, "forward") || low == "plus":
		return WatsonOnly, nil
	case strings.Contains(low, "crick") || strings.HasPrefix(low, "reverse") || low == "minus":
		return CrickOnly, nil
	}
	return BothStrands, fmt.Errorf("invalid strand %q (both | watson | crick)", s)
}

// ParseSeqType maps "dna", "nuc", "nucleotide" and "pep", "protein",
// "peptide" to a pattern mode.
func ParseSeqType(s string) (pattern.Mode, error) {
	low := strings.ToLower(strings.TrimSpace(s))
	switch {
	case low == "" || low == "dna" || strings.HasPrefix(low, "nuc"):
		return pattern.Nucleotide, nil
	case low == "protein" || strings.HasPrefix(low, "pep"):
		return pattern.Peptide, nil
	}
	return pattern.Nucleotide, fmt.Errorf("invalid sequence type %q (nucleotide | peptide)", s)
}

// Search is one typed patmatch request.
type Search struct {
	Pattern string
	SeqType pattern.Mode
	Strand  Strand
	Dataset string // name under DataDir, or a path
	Kind    hits.DatasetKind
	KindSet bool // Kind was given explicitly
	Budget  matcher.Budget
	MaxHits int
	SeqName string // retrieval mode when set
}

// Restriction is one typed restriction-mapper request.
type Restriction struct {
	Name  string // lookup in the genomic file
	Seq   string // raw residues
	File  string // FASTA file; the first record is analyzed
	Class restrict.Class
}

// DatasetPath resolves a dataset name: "" selects the per-type default,
// "-" and anything that looks like a path are kept, bare names map to
// <DataDir>/<name>.seq.
func (c Config) DatasetPath(name string, mode pattern.Mode) string {
	switch {
	case name == "" && mode == pattern.Peptide:
		return filepath.Join(c.DataDir, "orf_pep.seq")
	case name == "":
		return filepath.Join(c.DataDir, "orf_dna.seq")
	case name == "-":
		return name
	case strings.ContainsRune(name, filepath.Separator) || filepath.Ext(name) != "":
		return name
	}
	return filepath.Join(c.DataDir, name+".seq")
}

// LocusPath is the annotation file of ORF datasets.
func (c Config) LocusPath() string { return filepath.Join(c.DataDir, "locus.txt") }

// GenomicPath is the record set restriction lookups read.
func (c Config) GenomicPath() string {
	return filepath.Join(c.RestrictionDataDir, restrict.GenomicFile)
}
