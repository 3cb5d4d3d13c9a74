// internal/app/search.go
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"patmatch-core/hits"
	"patmatch-core/matcher"
	"patmatch-core/pattern"
	"patmatch/internal/cmdutil"
	"patmatch/internal/config"
	"patmatch/internal/output"
	"patmatch/internal/pipeline"
	"patmatch/internal/report"
	"patmatch/internal/writers"
)

// tasks compiles the pattern once per searched strand. The first compiled
// pattern is the one echoed back in the response.
func tasks(req config.Search, minTokens int) ([]pipeline.Task, *pattern.Compiled, error) {
	var modes []pattern.Mode
	switch {
	case req.SeqType == pattern.Peptide:
		modes = []pattern.Mode{pattern.Peptide}
	case req.Strand == config.WatsonOnly:
		modes = []pattern.Mode{pattern.Nucleotide}
	case req.Strand == config.CrickOnly:
		modes = []pattern.Mode{pattern.Complement}
	default:
		modes = []pattern.Mode{pattern.Nucleotide, pattern.Complement}
	}
	var (
		out   []pipeline.Task
		first *pattern.Compiled
	)
	for _, m := range modes {
		c, err := pattern.Compile(req.Pattern, pattern.Options{Mode: m, MinTokens: minTokens})
		if err != nil {
			return nil, nil, err
		}
		if first == nil {
			first = c
		}
		out = append(out, pipeline.Task{
			Searcher:    matcher.New(c, req.Budget),
			Constraints: hits.ConstraintsOf(c),
		})
	}
	return out, first, nil
}

func (a *App) search(ctx context.Context, cfg config.Config, req config.Search, outw, stderr io.Writer) error {
	path := cfg.DatasetPath(req.Dataset, req.SeqType)
	ts, compiled, err := tasks(req, cfg.MinTokens)
	if err != nil {
		return err
	}

	corpus, err := a.corpus(ctx, path)
	if err != nil {
		return fmt.Errorf("dataset %s: %w", path, err)
	}
	kind := req.Kind
	if !req.KindSet {
		kind = hits.KindForDataset(path)
	}
	opt := hits.Options{MaxHits: req.MaxHits, Kind: kind}
	if kind == hits.ORF {
		if opt.Locus, err = a.locus(cfg.LocusPath()); err != nil {
			return fmt.Errorf("locus %s: %w", cfg.LocusPath(), err)
		}
	}
	cmdutil.Infof(stderr, cfg.Verbose, "searching %s (%s, %s records) for %s with %d task(s)",
		path, cmdutil.Bytes(len(corpus.Data)), cmdutil.Count(len(corpus.Table.Records)), compiled, len(ts))
	cached, misses := a.corpora.Stats()
	cmdutil.Infof(stderr, cfg.Verbose, "corpus cache: %d held, %d hits, %d misses", a.corpora.Len(), cached, misses)

	batches, err := pipeline.Search(ctx, pipeline.Config{
		Threads:   cfg.Workers(),
		ChunkSize: cfg.ChunkSize,
		Timeout:   cfg.Timeout,
	}, corpus.Data, ts)
	if err != nil {
		return err
	}
	res, err := hits.Process(batches, corpus.Table, opt)
	if err != nil {
		return fmt.Errorf("dataset %s: %w", path, err)
	}

	var diags []string
	for _, d := range res.Diagnostics {
		cmdutil.Warnf(stderr, cfg.Quiet, "%v", d)
		diags = append(diags, d.Error())
	}

	var downloadURL string
	if cfg.Reports && res.Total > 0 {
		dir := report.Dir{Root: cfg.TmpDir, Compress: cfg.Compress}
		name := dir.Name(report.PatmatchPrefix, requestID(cfg, req, path))
		if _, err := dir.Write(name, func(w io.Writer) error { return output.WriteHitsTSV(w, res) }); err != nil {
			cmdutil.Warnf(stderr, cfg.Quiet, "%v", err)
			diags = append(diags, err.Error())
		} else {
			downloadURL = name
		}
	}
	cmdutil.Infof(stderr, cfg.Verbose, "%s hits (%s unique) in %s",
		cmdutil.Count(res.Total), cmdutil.Count(res.Unique), filepath.Base(path))

	resp := output.ToAPIResponse(res, downloadURL, diags)
	resp.Pattern = compiled.String()
	resp.Dataset = path
	if cfg.ReportJSON && downloadURL != "" {
		dir := report.Dir{Root: cfg.TmpDir}
		if _, err := dir.WriteJSON(report.Sidecar(downloadURL), resp); err != nil {
			cmdutil.Warnf(stderr, cfg.Quiet, "%v", err)
		}
	}
	if err := writers.SearchWriters.Write(cfg.Output, outw, writers.Search{Result: res, Response: resp}); err != nil {
		return err
	}
	if res.Total == 0 {
		return errNoMatch
	}
	return nil
}

// requestID names the report of a request.
func requestID(cfg config.Config, req config.Search, path string) string {
	if cfg.ReportIDs != "content" {
		return report.RandomID()
	}
	return report.ContentID(req.Pattern, req.SeqType.String(), req.Strand.String(), path,
		req.Budget.String(), strconv.Itoa(req.MaxHits))
}
