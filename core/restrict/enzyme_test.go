package restrict

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad(t *testing.T) {
	in := "# name offset site overhang\nEcoRI 1 GAATTC 4\n\nSmaI 3 cccggg 0 extra\n"
	got, err := Load(strings.NewReader(in), "mem")
	if err != nil {
		t.Fatal(err)
	}
	want := []Enzyme{
		{Name: "EcoRI", Offset: 1, Site: "GAATTC", Overhang: 4},
		{Name: "SmaI", Offset: 3, Site: "CCCGGG", Overhang: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		in   string
		line int
	}{
		{"EcoRI 1 GAATTC\n", 1},
		{"EcoRI 1 GAATTC 4\nBad x GAATTC 4\n", 2},
		{"EcoRI 1 GAATTC four\n", 1},
		{"\n# nothing\n", 0},
	}
	for _, tc := range tests {
		_, err := Load(strings.NewReader(tc.in), "enz")
		var efe *EnzymeFileError
		if !errors.As(err, &efe) || !errors.Is(err, ErrEnzymeFile) {
			t.Fatalf("%q: err = %v", tc.in, err)
		}
		if efe.Line != tc.line {
			t.Fatalf("%q: line = %d, want %d", tc.in, efe.Line, tc.line)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "rest_enzymes"))
	if !errors.Is(err, ErrEnzymeFile) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
}

func TestCatalog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rest_enzymes", "EcoRI 1 GAATTC 4\nSmaI 3 CCCGGG 0\nPstI 5 CTGCAG -4\n")
	writeFile(t, dir, "rest_enzymes.5", "EcoRI 1 GAATTC 4\n")
	writeFile(t, dir, "rest_enzymes.blunt", "SmaI 3 CCCGGG 0\n")

	cat, err := LoadCatalog(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"EcoRI": TypeFivePrime, "SmaI": TypeBlunt}
	if !reflect.DeepEqual(cat.Types, want) {
		t.Fatalf("types = %v, want %v", cat.Types, want)
	}
	all, err := cat.Enzymes(All)
	if err != nil || len(all) != 3 {
		t.Fatalf("all: %d %v", len(all), err)
	}
	if _, err := cat.Enzymes(ThreePrime); !errors.Is(err, ErrEnzymeFile) {
		t.Fatalf("missing .3 file: err = %v", err)
	}
}
