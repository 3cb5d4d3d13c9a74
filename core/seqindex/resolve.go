// core/seqindex/resolve.go
package seqindex

import (
	"errors"
	"sort"
)

// ErrEmptyIndex is returned when resolving against a table with no entries.
var ErrEmptyIndex = errors.New("seqindex: empty offset table")

// Resolve returns the largest element of offsets that is <= off.
// Offsets before the first element resolve to the first element.
// offsets must be sorted ascending.
func Resolve(off int, offsets []int) (int, error) {
	if len(offsets) == 0 {
		return 0, ErrEmptyIndex
	}
	i := sort.Search(len(offsets), func(i int) bool { return offsets[i] > off })
	if i == 0 {
		return offsets[0], nil
	}
	return offsets[i-1], nil
}

// Resolve maps a byte offset in the indexed file to its table entry.
func (t *Table) Resolve(off int) (Entry, error) {
	if t == nil || len(t.offsets) == 0 {
		return Entry{}, ErrEmptyIndex
	}
	i := sort.Search(len(t.offsets), func(i int) bool { return t.offsets[i] > off })
	if i > 0 {
		i--
	}
	return t.Entries[i], nil
}
