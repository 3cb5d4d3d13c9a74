// core/restrict/analyze.go
package restrict

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"patmatch-core/matcher"
	"patmatch-core/pattern"
)

// Strand of a recognition site hit.
type Strand int

const (
	Watson Strand = iota
	Crick
)

func (s Strand) String() string {
	if s == Crick {
		return "crick"
	}
	return "watson"
}

// Hit is one recognition site occurrence, 1-based inclusive coordinates on
// the Watson strand (Begin <= End for both strands).
type Hit struct {
	Begin, End int
	Strand     Strand
}

// EnzymeResult is the cut map of one enzyme.
type EnzymeResult struct {
	Enzyme
	Type      string
	Hits      []Hit
	Watson    []int // distinct cut positions, ascending
	Crick     []int
	Fragments Fragments
}

// Cuts is the number of cuts that produced the fragments.
func (r EnzymeResult) Cuts() int { return len(r.Fragments.Ordered) - 1 }

// Result of one analysis.
type Result struct {
	SeqLen  int
	Enzymes []EnzymeResult // ordered by name
	NotCut  []string       // sorted
}

type compiledEnzyme struct {
	Enzyme
	fwd, rev   *matcher.Matcher
	site       string // literal forward site, "" when ambiguous
	rcSite     string
	palindrome bool
}

// Analyzer maps enzyme cut sites over sequences. It is read-only after
// construction and safe for concurrent use.
type Analyzer struct {
	enzymes []compiledEnzyme
	types   map[string]string
	pre     *prefilter
	workers int
}

// NewAnalyzer compiles every recognition site. workers <= 0 uses NumCPU.
func NewAnalyzer(enzymes []Enzyme, types map[string]string, workers int) (*Analyzer, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	a := &Analyzer{types: types, workers: workers}
	var literals []string
	for _, e := range enzymes {
		fwd, err := pattern.Compile(e.Site, pattern.Options{Mode: pattern.Nucleotide, MinTokens: -1})
		if err != nil {
			return nil, fmt.Errorf("%w: enzyme %s: %w", ErrEnzymeFile, e.Name, err)
		}
		rev, err := pattern.Compile(e.Site, pattern.Options{Mode: pattern.Complement, MinTokens: -1})
		if err != nil {
			return nil, fmt.Errorf("%w: enzyme %s: %w", ErrEnzymeFile, e.Name, err)
		}
		ce := compiledEnzyme{
			Enzyme:     e,
			fwd:        matcher.New(fwd, matcher.Exact),
			rev:        matcher.New(rev, matcher.Exact),
			palindrome: pattern.ReverseComplement(e.Site) == e.Site,
		}
		if s, ok := fwd.Literal(); ok {
			if rc, ok := rev.Literal(); ok {
				ce.site, ce.rcSite = s, rc
				literals = append(literals, s, rc)
			}
		}
		a.enzymes = append(a.enzymes, ce)
	}
	a.pre = newPrefilter(literals)
	return a, nil
}

// Analyze searches every enzyme over seq on both strands and applies the
// filters of class. For NoCut only Result.NotCut is filled.
func (a *Analyzer) Analyze(ctx context.Context, seq []byte, class Class) (*Result, error) {
	upper := bytes.ToUpper(seq)
	found := a.pre.scan(upper)

	hits := make([][]Hit, len(a.enzymes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i := range a.enzymes {
		g.Go(func() error {
			h, err := a.enzymes[i].search(gctx, upper, found)
			hits[i] = h
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{SeqLen: len(seq)}
	for i, e := range a.enzymes {
		if len(hits[i]) == 0 {
			res.NotCut = append(res.NotCut, e.Name)
		}
	}
	res.NotCut = dedupSorted(res.NotCut)
	if class == NoCut {
		return res, nil
	}

	limit, subtype := class.CutLimit(), class.Subtype()
	for i, e := range a.enzymes {
		h := hits[i]
		if len(h) == 0 {
			continue
		}
		if limit > 0 && !cutCountOK(h, limit) {
			continue
		}
		typ := a.types[e.Name]
		if subtype != "" && typ != subtype {
			continue
		}
		res.Enzymes = append(res.Enzymes, cutMap(e.Enzyme, typ, h, len(seq)))
	}
	sort.SliceStable(res.Enzymes, func(i, j int) bool { return res.Enzymes[i].Name < res.Enzymes[j].Name })
	return res, nil
}

func (e *compiledEnzyme) search(ctx context.Context, text []byte, found map[string][]int) ([]Hit, error) {
	var out []Hit
	if e.site != "" {
		n := len(e.site)
		for _, s := range found[e.site] {
			out = append(out, Hit{Begin: s + 1, End: s + n, Strand: Watson})
		}
		for _, s := range found[e.rcSite] {
			out = append(out, Hit{Begin: s + 1, End: s + n, Strand: Crick})
		}
		return out, ctx.Err()
	}

	spans, err := e.fwd.All(ctx, text, 0)
	if err != nil {
		return nil, err
	}
	for _, s := range spans {
		out = append(out, Hit{Begin: s.Start + 1, End: s.End, Strand: Watson})
	}
	// A palindromic site reads the same on both strands.
	if !e.palindrome {
		if spans, err = e.rev.All(ctx, text, 0); err != nil {
			return nil, err
		}
	}
	for _, s := range spans {
		out = append(out, Hit{Begin: s.Start + 1, End: s.End, Strand: Crick})
	}
	return out, nil
}

// cutCountOK keeps enzymes hitting exactly limit times on one strand and at
// most limit times on the other.
func cutCountOK(hits []Hit, limit int) bool {
	var w, c int
	for _, h := range hits {
		if h.Strand == Watson {
			w++
		} else {
			c++
		}
	}
	return (c == limit && w <= limit) || (w == limit && c <= limit)
}

func cutMap(e Enzyme, typ string, hits []Hit, seqLen int) EnzymeResult {
	r := EnzymeResult{Enzyme: e, Type: typ, Hits: hits}
	var all []int
	for _, h := range hits {
		if h.Strand == Watson {
			pos := h.Begin + e.Offset - 1
			r.Watson = append(r.Watson, pos)
			all = append(all, pos)
		} else {
			pos := h.Begin + e.Offset + e.Overhang - 1
			r.Crick = append(r.Crick, pos)
			all = append(all, pos)
		}
	}
	r.Watson = dedupInts(r.Watson)
	r.Crick = dedupInts(r.Crick)
	r.Fragments = Cut(seqLen, all)
	return r
}

func dedupInts(v []int) []int {
	sort.Ints(v)
	out := v[:0]
	for i, x := range v {
		if i == 0 || x != v[i-1] {
			out = append(out, x)
		}
	}
	return out
}

func dedupSorted(v []string) []string {
	sort.Strings(v)
	out := v[:0]
	for i, x := range v {
		if i == 0 || x != v[i-1] {
			out = append(out, x)
		}
	}
	return out
}
