package restrictapp

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"patmatch/pkg/api"
)

const enzymes = `# name offset site overhang
EcoRI 1 GAATTC 4
NotI 2 GCGGCCGC 4
SmaI 3 CCCGGG 0
`

func enzymeDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"rest_enzymes":       enzymes,
		"rest_enzymes.5":     "EcoRI 1 GAATTC 4\nNotI 2 GCGGCCGC 4\n",
		"rest_enzymes.blunt": "SmaI 3 CCCGGG 0\n",
		"orf_genomic.seq": ">YAL001C TFC3 SGDID:S000000001, Chr I from 151006-147594, Genome Release 64-3-1, reverse complement, Verified ORF\n" +
			"AAAGAATTCAAA\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func run(t *testing.T, a *App, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := a.Run(context.Background(), args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestMap_ByNameText(t *testing.T) {
	dir := enzymeDir(t)
	code, out, stderr := run(t, New(), "--data-dir", dir, "--tmp-dir", t.TempDir(), "-n", "tfc3")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output:\n%s", out)
	}
	if want := "EcoRI\t1\t4\tGAATTC\t5' overhang\t2\t4, 4, 4\t4, 4, 4\t4\t8"; lines[1] != want {
		t.Fatalf("row = %q, want %q", lines[1], want)
	}
}

func TestMap_JSONWithReports(t *testing.T) {
	dir := enzymeDir(t)
	tmp := t.TempDir()
	code, out, stderr := run(t, New(), "--data-dir", dir, "--tmp-dir", tmp, "-o", "json", "-n", "YAL001C")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	var resp api.RestrictionResponseV1
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if resp.SeqName != "TFC3/YAL001C" || resp.ChrCoords != "Chr I from 151006-147594" || resp.SeqLength != 12 {
		t.Fatalf("response = %+v", resp)
	}
	if _, ok := resp.Data["EcoRI"]; !ok || len(resp.Data) != 1 {
		t.Fatalf("data = %+v", resp.Data)
	}
	if strings.Join(resp.NotCutEnzyme, ",") != "NotI,SmaI" {
		t.Fatalf("not cut = %v", resp.NotCutEnzyme)
	}
	for _, name := range []string{resp.DownloadURL, resp.DownloadURLNotCut} {
		if name == "" {
			t.Fatal("report not written")
		}
		if _, err := os.Stat(filepath.Join(tmp, name)); err != nil {
			t.Fatal(err)
		}
	}
}

func TestMap_RawSequenceClasses(t *testing.T) {
	dir := enzymeDir(t)
	a := New()

	code, out, _ := run(t, a, "--data-dir", dir, "--reports=false", "--seq", "ttcccggg aa", "-c", "blunt")
	if code != 0 || !strings.Contains(out, "SmaI\t3\t0\tCCCGGG\tblunt end\t1\t5, 5\t5, 5\t5\t5\n") {
		t.Fatalf("exit %d output:\n%s", code, out)
	}

	code, out, _ = run(t, a, "--data-dir", dir, "--reports=false", "--seq", "ttcccgggaa", "-c", "no-cut")
	if code != 0 || out != "EcoRI\nNotI\n" {
		t.Fatalf("exit %d output %q", code, out)
	}

	code, _, _ = run(t, a, "--data-dir", dir, "--reports=false", "--seq", "ttttt", "--no-match-exit-code", "1")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
}

func TestMap_FastaFile(t *testing.T) {
	dir := enzymeDir(t)
	fa := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(fa, []byte(">mine\nGAATTC\n>second\nCCCGGG\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, stderr := run(t, New(), "--data-dir", dir, "--reports=false", "-o", "jsonl", "-f", fa)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	var line api.EnzymeLineV1
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &line); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if line.Enzyme != "EcoRI" || line.Cuts != 1 {
		t.Fatalf("line = %+v", line)
	}
}

func TestMap_Errors(t *testing.T) {
	dir := enzymeDir(t)
	bad := t.TempDir()
	if err := os.WriteFile(filepath.Join(bad, "rest_enzymes"), []byte("EcoRI 1 GAATTC\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"unknown name", []string{"--data-dir", dir, "-n", "NOPE1"}, 2},
		{"empty sequence", []string{"--data-dir", dir, "--seq", "1234"}, 2},
		{"malformed enzyme file", []string{"--data-dir", bad, "--seq", "ACGT"}, 2},
		{"missing genomic file", []string{"--data-dir", bad, "-n", "ACT1"}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := run(t, New(), append(tc.args, "--reports=false")...)
			if code != tc.code {
				t.Fatalf("exit %d, want %d (%s)", code, tc.code, stderr)
			}
		})
	}
}

func TestApp_ReusesAnalyzer(t *testing.T) {
	dir := enzymeDir(t)
	a := New()
	for i := 0; i < 2; i++ {
		if code, _, stderr := run(t, a, "--data-dir", dir, "--reports=false", "--threads", "2", "--seq", "GAATTC"); code != 0 {
			t.Fatalf("exit %d: %s", code, stderr)
		}
	}
	if hits, misses := a.analyzers.Stats(); hits != 1 || misses != 1 {
		t.Fatalf("hits=%d misses=%d", hits, misses)
	}
	if code, _, stderr := run(t, a, "--data-dir", dir, "--reports=false", "--threads", "3", "--seq", "GAATTC"); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if _, misses := a.analyzers.Stats(); misses != 2 || a.analyzers.Len() != 2 {
		t.Fatalf("worker count change reused the analyzer: misses=%d len=%d", misses, a.analyzers.Len())
	}
}
