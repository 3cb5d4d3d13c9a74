// core/hits/process.go
package hits

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"patmatch-core/matcher"
	"patmatch-core/pattern"
	"patmatch-core/seqindex"
)

// Constraints are the record-level checks a pattern imposes on its spans.
type Constraints struct {
	Begin      bool
	End        bool
	Exclusions []pattern.Exclusion
}

// ConstraintsOf lifts the anchors and exclusions of a compiled pattern.
func ConstraintsOf(c *pattern.Compiled) Constraints {
	return Constraints{Begin: c.Begin, End: c.End, Exclusions: c.Exclusions}
}

// Batch is the output of one strand search with its constraints.
type Batch struct {
	Spans       []matcher.Span
	Constraints Constraints
}

// Options configures Process.
type Options struct {
	MaxHits int // <= 0 selects DefaultMaxHits
	Kind    DatasetKind
	Locus   map[string]Locus // ORF annotations, keyed by feature name
}

// Result is the post-processed hit table.
type Result struct {
	Kind        DatasetKind
	Hits        []Hit
	Unique      int // records with at least one hit
	Total       int
	Diagnostics []error
}

type pending struct {
	span matcher.Span
	cons *Constraints
}

// Process resolves spans to records, applies the constraints, caps the hit
// count and builds sorted, annotated hits. Spans are taken in file order
// across batches. The only error is an unusable index; rejected rows are
// reported in Result.Diagnostics.
func Process(batches []Batch, tab *seqindex.Table, opt Options) (*Result, error) {
	if tab == nil || len(tab.Entries) == 0 {
		return nil, seqindex.ErrEmptyIndex
	}
	maxHits := opt.MaxHits
	if maxHits <= 0 {
		maxHits = DefaultMaxHits
	}

	var all []pending
	for i := range batches {
		for _, s := range batches[i].Spans {
			all = append(all, pending{span: s, cons: &batches[i].Constraints})
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].span.Start < all[j].span.Start })

	res := &Result{Kind: opt.Kind}
	counts := make(map[string]int)
	regions := make(map[int]Region)
	unannotated := make(map[int]bool)
	var rows []string

scan:
	for _, p := range all {
		s := p.span
		for _, ex := range p.cons.Exclusions {
			if ex.Rejects(s.Text) {
				continue scan
			}
		}
		entry, err := tab.Resolve(s.Start)
		if err != nil {
			return nil, err
		}
		if entry.IsHeader() {
			continue
		}
		rec := tab.Records[entry.Record]
		begin := s.Start - entry.Offset + 1
		end := s.End - entry.Offset
		if p.cons.Begin && begin != 1 {
			continue
		}
		if p.cons.End && end != rec.Length {
			continue
		}
		name := rec.CanonicalName()

		var row string
		if opt.Kind == NotFeature {
			if unannotated[entry.Record] {
				continue
			}
			reg, ok := regions[entry.Record]
			if !ok {
				if reg, ok = RegionFromRecord(rec); !ok {
					unannotated[entry.Record] = true
					res.Diagnostics = append(res.Diagnostics, &RowParseError{Row: name, Reason: "no region annotation"})
					continue
				}
				regions[entry.Record] = reg
			}
			shift := reg.Start - 1
			row = strings.Join([]string{reg.ORFs, strconv.Itoa(begin + shift), strconv.Itoa(end + shift), string(s.Text), reg.Chromosome, name}, "\t")
		} else {
			l := opt.Locus[name]
			row = strings.Join([]string{name, strconv.Itoa(begin), strconv.Itoa(end), string(s.Text), l.Gene, l.SGDID, l.Desc}, "\t")
		}

		if res.Total >= maxHits {
			break
		}
		if counts[name] == 0 {
			res.Unique++
		}
		counts[name]++
		res.Total++
		rows = append(rows, row)
	}

	sort.Strings(rows)
	for _, row := range rows {
		h, err := parseRow(row, opt.Kind)
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, err)
			continue
		}
		h.Count = counts[h.Name]
		res.Hits = append(res.Hits, h)
	}
	return res, nil
}

// RowParseError reports a candidate row that could not be turned into a hit.
type RowParseError struct {
	Row    string
	Reason string
}

func (e *RowParseError) Error() string {
	return fmt.Sprintf("Error processing row: %s, error: %s", e.Row, e.Reason)
}
