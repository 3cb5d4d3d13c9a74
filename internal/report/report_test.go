package report

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func readBack(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var r io.Reader = bytes.NewReader(raw)
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			t.Fatal(err)
		}
		r = zr
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			t.Fatal(err)
		}
		defer zr.Close()
		r = zr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestDir_Write(t *testing.T) {
	for _, comp := range []string{"", "gz", "zst"} {
		t.Run("compress="+comp, func(t *testing.T) {
			d := Dir{Root: t.TempDir(), Compress: comp}
			name := d.Name(PatmatchPrefix, "abc")
			path, err := d.Write(name, func(w io.Writer) error {
				_, err := io.WriteString(w, "Sequence Name\tHitNumber\n")
				return err
			})
			if err != nil {
				t.Fatal(err)
			}
			if filepath.Base(path) != name {
				t.Fatalf("path %s, name %s", path, name)
			}
			if got := readBack(t, path); got != "Sequence Name\tHitNumber\n" {
				t.Fatalf("content %q", got)
			}
		})
	}
}

func TestDir_WriteFailureLeavesNothing(t *testing.T) {
	root := t.TempDir()
	d := Dir{Root: root}
	boom := errors.New("boom")
	_, err := d.Write("patmatch.x", func(io.Writer) error { return boom })
	var owe *OutputWriteError
	if !errors.As(err, &owe) || !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Fatalf("left behind: %v", entries)
	}
}

func TestDir_UnwritableRoot(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(f, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Dir{Root: filepath.Join(f, "sub")}.Write("x", func(io.Writer) error { return nil })
	var owe *OutputWriteError
	if !errors.As(err, &owe) {
		t.Fatalf("err = %v", err)
	}
}

func TestIDs(t *testing.T) {
	if a, b := RandomID(), RandomID(); a == b || len(a) != 36 {
		t.Fatalf("random ids %q %q", a, b)
	}
	a := ContentID("GAATTC", "orf_dna.seq", "0ids")
	if a != ContentID("GAATTC", "orf_dna.seq", "0ids") || len(a) != 32 {
		t.Fatalf("content id %q not stable", a)
	}
	if a == ContentID("GAATTC", "orf_dna.seq0", "ids") {
		t.Fatal("part boundaries ignored")
	}
}

func TestWriteJSON(t *testing.T) {
	d := Dir{Root: t.TempDir()}
	path, err := d.WriteJSON("x.json", map[string]int{"totalHits": 3})
	if err != nil {
		t.Fatal(err)
	}
	if got := readBack(t, path); !strings.Contains(got, `"totalHits": 3`) {
		t.Fatalf("json %q", got)
	}
}

func TestSidecar(t *testing.T) {
	for in, want := range map[string]string{
		"patmatch.abc":              "patmatch.abc.json",
		"patmatch.abc.gz":           "patmatch.abc.json",
		"restrictionmapper.abc.zst": "restrictionmapper.abc.json",
	} {
		if got := Sidecar(in); got != want {
			t.Errorf("Sidecar(%q) = %q, want %q", in, got, want)
		}
	}
}
