// core/pattern/set.go
package pattern

import "math/bits"

// Set is a 256-bit membership table over residue bytes.
type Set [4]uint64

// SetOf returns the set of the bytes in s.
func SetOf(s string) Set {
	var out Set
	for i := 0; i < len(s); i++ {
		out.Add(s[i])
	}
	return out
}

func (s *Set) Add(b byte) { s[b>>6] |= 1 << (b & 63) }
func (s *Set) Remove(b byte) { s[b>>6] &^= 1 << (b & 63) }
func (s Set) Has(b byte) bool { return s[b>>6]&(1<<(b&63)) != 0 }
func (s Set) IsEmpty() bool { return s == Set{} }
func (s Set) Union(o Set) Set { return Set{s[0] | o[0], s[1] | o[1], s[2] | o[2], s[3] | o[3]} }
func (s Set) Intersect(o Set) Set { return Set{s[0] & o[0], s[1] & o[1], s[2] & o[2], s[3] & o[3]} }
func (s Set) Without(o Set) Set { return Set{s[0] &^ o[0], s[1] &^ o[1], s[2] &^ o[2], s[3] &^ o[3]} }

func (s Set) Len() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1]) + bits.OnesCount64(s[2]) + bits.OnesCount64(s[3])
}

// Bytes lists the members in ascending order.
func (s Set) Bytes() []byte {
	out := make([]byte, 0, s.Len())
	for c := 0; c < 256; c++ {
		if s.Has(byte(c)) {
			out = append(out, byte(c))
		}
	}
	return out
}

// anySet matches every byte except line breaks.
var anySet = func() Set {
	var s Set
	for c := 0; c < 256; c++ {
		if c != '\n' && c != '\r' {
			s.Add(byte(c))
		}
	}
	return s
}()

// Any is the "match any residue" set.
func Any() Set { return anySet }

// IsAny reports whether s is the wildcard set.
func (s Set) IsAny() bool { return s == anySet }
