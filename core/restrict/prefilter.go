// core/restrict/prefilter.go
package restrict

import (
	"sort"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

// prefilter finds every unambiguous recognition site in one pass.
type prefilter struct {
	ac    aho.AhoCorasick
	sites []string
}

// newPrefilter returns nil when there is nothing to scan for. Sites must be
// upper case; duplicates are collapsed.
func newPrefilter(sites []string) *prefilter {
	seen := make(map[string]bool, len(sites))
	var uniq []string
	for _, s := range sites {
		if s != "" && !seen[s] {
			seen[s] = true
			uniq = append(uniq, s)
		}
	}
	if len(uniq) == 0 {
		return nil
	}
	b := aho.NewAhoCorasickBuilder(aho.Opts{DFA: true})
	return &prefilter{ac: b.Build(uniq), sites: uniq}
}

// scan returns the ascending start offsets of each site in text, which must
// be upper case.
func (p *prefilter) scan(text []byte) map[string][]int {
	if p == nil {
		return map[string][]int{}
	}
	out := make(map[string][]int, len(p.sites))
	it := p.ac.IterOverlappingByte(text)
	for m := it.Next(); m != nil; m = it.Next() {
		s := p.sites[m.Pattern()]
		out[s] = append(out[s], m.Start())
	}
	for _, starts := range out {
		sort.Ints(starts)
	}
	return out
}
