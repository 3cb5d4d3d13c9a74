package app

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

const chrFasta = ">seqA first\nAAGGTTTCCTT\n>seqB second\nGGGAAGGG\n"

func dataDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
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

func TestSearch_BothStrandsText(t *testing.T) {
	dir := dataDir(t, map[string]string{"chr.seq": chrFasta})
	code, out, stderr := run(t, New(), "--data-dir", dir, "--tmp-dir", dir, "-d", "chr", "-p", "AAGG")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	want := strings.Join([]string{
		"Sequence Name\tHitNumber\tMatchPattern\tMatchStartCoord\tMatchStopCoord",
		"seqA\t2\tAAGG\t1\t4",
		"seqA\t2\tCCTT\t8\t11",
		"seqB\t1\tAAGG\t4\t7",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("output:\n%s\nwant:\n%s", out, want)
	}
}

func TestSearch_WatsonOnlyJSONWithReport(t *testing.T) {
	dir := dataDir(t, map[string]string{"chr.seq": chrFasta})
	tmp := t.TempDir()
	code, out, stderr := run(t, New(), "--data-dir", dir, "--tmp-dir", tmp, "-d", "chr",
		"-p", "AAGG", "--strand", "watson", "-o", "json", "--report-ids", "content", "--compress", "gz", "--report-json")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	var resp api.PatmatchResponseV1
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if resp.TotalHits != 2 || resp.UniqueHits != 2 || len(resp.Hits) != 2 {
		t.Fatalf("response = %+v", resp)
	}
	if !strings.HasPrefix(resp.DownloadURL, "patmatch.") || !strings.HasSuffix(resp.DownloadURL, ".gz") {
		t.Fatalf("download url = %q", resp.DownloadURL)
	}
	if _, err := os.Stat(filepath.Join(tmp, resp.DownloadURL)); err != nil {
		t.Fatalf("report missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, strings.TrimSuffix(resp.DownloadURL, ".gz")+".json")); err != nil {
		t.Fatalf("json sidecar missing: %v", err)
	}

	// identical request, identical report name
	_, out2, _ := run(t, New(), "--data-dir", dir, "--tmp-dir", tmp, "-d", "chr",
		"-p", "AAGG", "--strand", "watson", "-o", "json", "--report-ids", "content", "--compress", "gz", "--report-json")
	if out2 != out {
		t.Fatal("content ids differ between identical requests")
	}
}

func TestSearch_NoMatchExitCode(t *testing.T) {
	dir := dataDir(t, map[string]string{"chr.seq": chrFasta})
	code, out, _ := run(t, New(), "--data-dir", dir, "--reports=false", "-d", "chr",
		"-p", "CCCCCC", "--no-match-exit-code", "1")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.HasPrefix(out, "Sequence Name\t") {
		t.Fatalf("header missing: %q", out)
	}
}

func TestSearch_Mismatches(t *testing.T) {
	const header = "Sequence Name\tHitNumber\tMatchPattern\tMatchStartCoord\tMatchStopCoord\n"
	cases := []struct {
		name, seq, mismatch string
		code                int
		want                string
	}{
		{"substitution", "TTGAGTTCTT", "1s", 0, "s1\t1\tGAGTTC\t3\t8\n"},
		{"insertion", "TTGAACTTCTT", "1i", 0, "s1\t1\tGAACTTC\t3\t9\n"},
		{"deletion", "TTGATTCTT", "1d", 0, "s1\t1\tGATTC\t3\t7\n"},
		{"two substitutions over budget", "TTGCGTTCTT", "1s", 1, ""},
		{"no similar region", "CCCCCCCCCC", "1", 1, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := dataDir(t, map[string]string{"chr.seq": ">s1\n" + tc.seq + "\n"})
			code, out, stderr := run(t, New(), "--data-dir", dir, "--reports=false", "-d", "chr",
				"--strand", "watson", "-p", "GAATTC", "-m", tc.mismatch, "--no-match-exit-code", "1")
			if code != tc.code {
				t.Fatalf("exit %d, want %d (%s)", code, tc.code, stderr)
			}
			if out != header+tc.want {
				t.Fatalf("output:\n%s\nwant:\n%s", out, header+tc.want)
			}
		})
	}
}

func TestSearch_Errors(t *testing.T) {
	dir := dataDir(t, map[string]string{"chr.seq": chrFasta})
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"invalid residue", []string{"-p", "ACGTJ"}, 2},
		{"too short", []string{"-p", "AC"}, 2},
		{"missing dataset", []string{"-p", "ACGT", "-d", "absent"}, 3},
		{"usage", []string{"--strand", "sideways", "-p", "ACGT"}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"--data-dir", dir, "-d", "chr", "--reports=false"}, tc.args...)
			code, _, stderr := run(t, New(), args...)
			if code != tc.code {
				t.Fatalf("exit %d, want %d (%s)", code, tc.code, stderr)
			}
			if !strings.HasPrefix(stderr, "error: ") {
				t.Fatalf("stderr = %q", stderr)
			}
		})
	}
}

func TestSearch_ORFAnnotation(t *testing.T) {
	dir := dataDir(t, map[string]string{
		"orf_dna.seq": ">YAL001C TFC3 SGDID:S000000001\nATGAAGGTAA\n",
		"locus.txt":   "YAL001C\tTFC3\tS000000001\tsubunit of TFIIIC\n",
	})
	code, out, stderr := run(t, New(), "--data-dir", dir, "--reports=false", "--strand", "watson", "-p", "AAGG")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(out, "YAL001C\tTFC3\t1\tAAGG\t4\t7\tsubunit of TFIIIC") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestRetrieve(t *testing.T) {
	dir := dataDir(t, map[string]string{"chr.seq": chrFasta})
	a := New()
	code, out, stderr := run(t, a, "--data-dir", dir, "-d", "chr", "--seqname", "SEQB")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if out != ">seqB second\nGGGAAGGG\n" {
		t.Fatalf("output = %q", out)
	}

	code, _, stderr = run(t, a, "--data-dir", dir, "-d", "chr", "--seqname", "seqC", "--no-match-exit-code", "4")
	if code != 4 || !strings.Contains(stderr, "no sequence named") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
}

func TestRetrieve_ExactNameBeforePrefix(t *testing.T) {
	dir := dataDir(t, map[string]string{"chr.seq": ">seqA1 first\nAAAA\n>seqA second\nCCCC\n"})
	code, out, stderr := run(t, New(), "--data-dir", dir, "-d", "chr", "--seqname", "seqA")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if out != ">seqA second\nCCCC\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestApp_ReusesCorpus(t *testing.T) {
	dir := dataDir(t, map[string]string{"chr.seq": chrFasta})
	a := New()
	for i := 0; i < 3; i++ {
		if code, _, stderr := run(t, a, "--data-dir", dir, "--reports=false", "-d", "chr", "-p", "AAGG"); code != 0 {
			t.Fatalf("exit %d: %s", code, stderr)
		}
	}
	if hits, misses := a.corpora.Stats(); misses != 1 || hits != 2 {
		t.Fatalf("cache hits=%d misses=%d", hits, misses)
	}
}

func TestApp_Canceled(t *testing.T) {
	dir := dataDir(t, map[string]string{"chr.seq": chrFasta})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	code := New().Run(ctx, []string{"--data-dir", dir, "-d", "chr", "-p", "AAGG"}, &out, &errb)
	if code != 130 {
		t.Fatalf("exit %d, want 130 (%s)", code, errb.String())
	}
	if errb.Len() != 0 {
		t.Fatalf("interrupt printed %q", errb.String())
	}
}
