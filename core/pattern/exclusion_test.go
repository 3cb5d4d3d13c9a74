package pattern

import "testing"

func TestExclusions_Offsets(t *testing.T) {
	tests := []struct {
		in      string
		offsets []int
	}{
		{"A[^C]G", []int{1}},
		{"(AT){2}[^G]C", []int{4}},
		{"A{2,3}[^T]GG", []int{2}},
		{"[^A]C[^G]", []int{0, 2}},
		{"[^A]{2}CC", []int{0, 1}},
		{"AC[^G]{,1}T", nil},
		{"A(C[^G])T", []int{2}},
		{"ACGT", nil},
	}
	for _, tc := range tests {
		c := mustCompile(t, tc.in, Nucleotide)
		if len(c.Exclusions) != len(tc.offsets) {
			t.Errorf("%s: %d exclusions, want %d", tc.in, len(c.Exclusions), len(tc.offsets))
			continue
		}
		for i, e := range c.Exclusions {
			if e.Offset != tc.offsets[i] {
				t.Errorf("%s: exclusion %d offset %d, want %d", tc.in, i, e.Offset, tc.offsets[i])
			}
		}
	}
}

func TestExclusion_Rejects(t *testing.T) {
	c := mustCompile(t, "A[^C]G", Nucleotide)
	e := c.Exclusions[0]
	if !e.Rejects([]byte("acg")) {
		t.Errorf("lowercase c at offset 1 should be rejected")
	}
	if e.Rejects([]byte("ATG")) {
		t.Errorf("ATG should pass")
	}
	if e.Rejects([]byte("A")) {
		t.Errorf("offset past the match never rejects")
	}
}
