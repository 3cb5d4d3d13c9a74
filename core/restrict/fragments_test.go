package restrict

import (
	"reflect"
	"testing"
)

func TestCut(t *testing.T) {
	tests := []struct {
		name    string
		seqLen  int
		cuts    []int
		ordered []int
		sorted  []int
	}{
		{"no cuts", 10, nil, []int{10}, []int{10}},
		{"one", 12, []int{4}, []int{4, 8}, []int{8, 4}},
		{"unsorted", 20, []int{15, 5}, []int{5, 10, 5}, []int{10, 5, 5}},
		{"duplicate positions", 20, []int{5, 5, 15}, []int{5, 10, 5}, []int{10, 5, 5}},
		{"out of range", 10, []int{-3, 0, 10, 14, 6}, []int{6, 4}, []int{6, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Cut(tc.seqLen, tc.cuts)
			if !reflect.DeepEqual(f.Ordered, tc.ordered) || !reflect.DeepEqual(f.Sorted, tc.sorted) {
				t.Fatalf("Cut = %+v, want %v / %v", f, tc.ordered, tc.sorted)
			}
			if f.Sum() != tc.seqLen {
				t.Fatalf("sum = %d, want %d", f.Sum(), tc.seqLen)
			}
		})
	}
}
