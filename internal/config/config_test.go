package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"patmatch-core/pattern"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if c.DataDir != "/data/patmatch" || c.RestrictionDataDir != "/data/restriction_mapper" {
		t.Fatalf("dirs: %+v", c)
	}
	if c.MaxHits != 500 || c.MinTokens != 3 || c.ChunkSize != 1<<20 || c.Timeout != 0 {
		t.Fatalf("limits: %+v", c)
	}
	if c.Output != "text" || !c.Reports || c.ReportIDs != "random" {
		t.Fatalf("output: %+v", c)
	}
}

func TestLoad_EnvAndFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "patmatch.yaml")
	body := "data_dir: /srv/seq\ntimeout: 30s\nmax_hits: 42\n"
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATMATCH_MAX_HITS", "7")

	c, err := Load(New(), file)
	if err != nil {
		t.Fatal(err)
	}
	if c.DataDir != "/srv/seq" || c.Timeout != 30*time.Second {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.MaxHits != 7 {
		t.Fatalf("env should win over file: max_hits=%d", c.MaxHits)
	}
}

func TestLoad_Invalid(t *testing.T) {
	v := New()
	v.Set("output", "xml")
	v.Set("threads", -1)
	if _, err := Load(v, ""); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestParseStrand(t *testing.T) {
	tests := map[string]Strand{
		"":                        BothStrands,
		"Both strands":            BothStrands,
		"both+strands":            BothStrands,
		"watson":                  WatsonOnly,
		"Forward (Watson) strand": WatsonOnly,
		"crick":                   CrickOnly,
		"Reverse (Crick) strand":  CrickOnly,
	}
	for in, want := range tests {
		got, err := ParseStrand(in)
		if err != nil || got != want {
			t.Errorf("ParseStrand(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseStrand("sideways"); err == nil {
		t.Error("bad strand accepted")
	}
}

func TestParseSeqType(t *testing.T) {
	for _, in := range []string{"", "dna", "nuc", "Nucleotide"} {
		if m, err := ParseSeqType(in); err != nil || m != pattern.Nucleotide {
			t.Errorf("%q -> %v %v", in, m, err)
		}
	}
	for _, in := range []string{"pep", "protein", "peptide"} {
		if m, err := ParseSeqType(in); err != nil || m != pattern.Peptide {
			t.Errorf("%q -> %v %v", in, m, err)
		}
	}
	if _, err := ParseSeqType("rna"); err == nil {
		t.Error("rna accepted")
	}
}

func TestDatasetPath(t *testing.T) {
	c := Config{DataDir: "/d"}
	tests := []struct {
		name string
		mode pattern.Mode
		want string
	}{
		{"", pattern.Nucleotide, "/d/orf_dna.seq"},
		{"", pattern.Peptide, "/d/orf_pep.seq"},
		{"NotFeature", pattern.Nucleotide, "/d/NotFeature.seq"},
		{"-", pattern.Nucleotide, "-"},
		{"local.fa.gz", pattern.Nucleotide, "local.fa.gz"},
		{"/abs/x", pattern.Nucleotide, "/abs/x"},
	}
	for _, tc := range tests {
		if got := c.DatasetPath(tc.name, tc.mode); got != tc.want {
			t.Errorf("DatasetPath(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
