package seqindex

import (
	"errors"
	"math/rand"
	"sort"
	"testing"
)

func TestResolve(t *testing.T) {
	offsets := []int{0, 10, 25, 40}
	tests := []struct {
		off, want int
	}{
		{0, 0},
		{5, 0},
		{10, 10},
		{24, 10},
		{25, 25},
		{39, 25},
		{40, 40},
		{1000, 40},
	}
	for _, tc := range tests {
		got, err := Resolve(tc.off, offsets)
		if err != nil {
			t.Fatalf("Resolve(%d): %v", tc.off, err)
		}
		if got != tc.want {
			t.Errorf("Resolve(%d) = %d, want %d", tc.off, got, tc.want)
		}
	}
}

func TestResolve_BeforeFirst(t *testing.T) {
	got, err := Resolve(3, []int{7, 9})
	if err != nil || got != 7 {
		t.Fatalf("got %d, %v; want 7", got, err)
	}
}

func TestResolve_Empty(t *testing.T) {
	if _, err := Resolve(1, nil); !errors.Is(err, ErrEmptyIndex) {
		t.Fatalf("want ErrEmptyIndex, got %v", err)
	}
	var tab *Table
	if _, err := tab.Resolve(1); !errors.Is(err, ErrEmptyIndex) {
		t.Fatalf("nil table: want ErrEmptyIndex, got %v", err)
	}
}

// Greatest element <= off, for random strictly increasing tables.
func TestResolve_GreatestLowerBound(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(50)
		seen := map[int]bool{}
		var offs []int
		for len(offs) < n {
			v := rng.Intn(5000)
			if !seen[v] {
				seen[v] = true
				offs = append(offs, v)
			}
		}
		sort.Ints(offs)
		for k := 0; k < 50; k++ {
			o := offs[0] + rng.Intn(offs[len(offs)-1]-offs[0]+300)
			got, err := Resolve(o, offs)
			if err != nil {
				t.Fatal(err)
			}
			want := offs[0]
			for _, v := range offs {
				if v <= o {
					want = v
				}
			}
			if got != want {
				t.Fatalf("Resolve(%d, %v) = %d, want %d", o, offs, got, want)
			}
		}
	}
}

func TestTableResolve_HeaderAndData(t *testing.T) {
	data := []byte(">s1 one\nACGTACGT\n>s2 two\nTTTT\n")
	tab, err := BuildBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	e, _ := tab.Resolve(2)
	if !e.IsHeader() || e.Name != ">s1" {
		t.Fatalf("offset 2 -> %+v, want header of s1", e)
	}
	e, _ = tab.Resolve(9)
	if e.IsHeader() || e.Name != "s1" || e.Offset != 8 {
		t.Fatalf("offset 9 -> %+v", e)
	}
	e, _ = tab.Resolve(len(data) - 2)
	if e.Name != "s2" {
		t.Fatalf("tail offset -> %+v", e)
	}
}
