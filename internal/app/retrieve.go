// internal/app/retrieve.go
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"patmatch-core/seqindex"
	"patmatch/internal/cmdutil"
	"patmatch/internal/config"
	"patmatch/internal/writers"
	"patmatch/pkg/api"
)

// findRecord returns the record named name, or else the first record whose
// header starts with ">"+name, ignoring case.
func findRecord(tab *seqindex.Table, name string) (seqindex.Record, bool) {
	name = strings.TrimSpace(name)
	if rec, ok := tab.Lookup(name); ok {
		return rec, true
	}
	want := ">" + strings.ToLower(name)
	for _, rec := range tab.Records {
		if strings.HasPrefix(strings.ToLower(rec.Defline), want) {
			return rec, true
		}
	}
	return seqindex.Record{}, false
}

func (a *App) retrieve(ctx context.Context, cfg config.Config, req config.Search, outw, stderr io.Writer) error {
	path := cfg.DatasetPath(req.Dataset, req.SeqType)
	corpus, err := a.corpus(ctx, path)
	if err != nil {
		return fmt.Errorf("dataset %s: %w", path, err)
	}
	rec, ok := findRecord(corpus.Table, req.SeqName)
	if !ok {
		cmdutil.Warnf(stderr, cfg.Quiet, "no sequence named %q in %s", req.SeqName, path)
		return errNoMatch
	}
	seq := api.SequenceV1{Defline: rec.Defline, Seq: string(corpus.Table.Sequence(corpus.Data, rec))}
	return writers.SequenceWriters.Write(cfg.Output, outw, seq)
}
