package restrict

import (
	"context"
	"testing"
)

const genomic = `>YAL067C SEO1 SGDID:S000000062, Chr I from 9016-7235, Genome Release 64-3-1, reverse complement, Verified ORF, "Putative permease"
ATGTATTCAATTGTTAAAGAG
>YAL068C PAU8 SGDID:S002010868, Chr I from 2169-1807, Genome Release 64-3-1, reverse complement, Verified ORF
ATGGTCAAATTAACTTCAATC
`

func TestFind(t *testing.T) {
	path := writeFile(t, t.TempDir(), GenomicFile, genomic)
	tests := []struct {
		query string
		name  string
		seq   string
	}{
		{"YAL067C", "SEO1/YAL067C", "ATGTATTCAATTGTTAAAGAG"},
		{"seo1", "SEO1/YAL067C", "ATGTATTCAATTGTTAAAGAG"},
		{"SGD:S002010868", "PAU8/YAL068C", "ATGGTCAAATTAACTTCAATC"},
	}
	for _, tc := range tests {
		s, ok, err := Find(context.Background(), path, tc.query)
		if err != nil || !ok {
			t.Fatalf("%s: ok=%v err=%v", tc.query, ok, err)
		}
		if s.Name != tc.name || string(s.Residues) != tc.seq {
			t.Fatalf("%s: got %q %q", tc.query, s.Name, s.Residues)
		}
	}

	if _, ok, err := Find(context.Background(), path, "nosuch"); ok || err != nil {
		t.Fatalf("nosuch: ok=%v err=%v", ok, err)
	}
}

func TestDescribe(t *testing.T) {
	s := Describe(`>YAL067C SEO1 SGDID:S000000062, Chr I from 9016-7235, Genome Release 64-3-1, reverse complement`, nil)
	if s.Name != "SEO1/YAL067C" || s.ChrCoords != "Chr I from 9016-7235" {
		t.Fatalf("got %+v", s)
	}
	if s := Describe(">chr1 something", nil); s.Name != "Unnamed" || s.ChrCoords != "" {
		t.Fatalf("plain defline: %+v", s)
	}
}

func TestRaw(t *testing.T) {
	s := Raw("  gaa ttc\n12 AAA-")
	if string(s.Residues) != "gaattcAAA" || s.Defline != UnnamedDefline || s.Name != "Unnamed" {
		t.Fatalf("Raw = %+v", s)
	}
}
