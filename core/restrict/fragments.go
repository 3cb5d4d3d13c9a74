// core/restrict/fragments.go
package restrict

import "sort"

// Fragments are the pieces a set of cuts leaves of a sequence.
type Fragments struct {
	Ordered []int // left to right
	Sorted  []int // largest first
}

// Sum is the total length covered, the sequence length for any valid cut set.
func (f Fragments) Sum() int {
	n := 0
	for _, v := range f.Ordered {
		n += v
	}
	return n
}

// Cut splits a sequence of length seqLen at cuts. Positions outside
// (0, seqLen) are ignored and repeated positions cut once, so Ordered always
// sums to seqLen.
func Cut(seqLen int, cuts []int) Fragments {
	bounds := make([]int, 0, len(cuts)+1)
	for _, c := range cuts {
		if c > 0 && c < seqLen {
			bounds = append(bounds, c)
		}
	}
	bounds = append(bounds, seqLen)
	sort.Ints(bounds)

	var f Fragments
	prev := 0
	for _, b := range bounds {
		if size := b - prev; size > 0 {
			f.Ordered = append(f.Ordered, size)
		}
		prev = b
	}
	f.Sorted = append([]int(nil), f.Ordered...)
	sort.Sort(sort.Reverse(sort.IntSlice(f.Sorted)))
	return f
}
