// internal/restrictapp/mapper.go
package restrictapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"patmatch-core/fasta"
	"patmatch-core/restrict"
	"patmatch/internal/cmdutil"
	"patmatch/internal/config"
	"patmatch/internal/output"
	"patmatch/internal/pipeline"
	"patmatch/internal/report"
	"patmatch/internal/snapshot"
	"patmatch/internal/writers"
)

var errFirst = errors.New("first record")

// sequence resolves the request input to the residues to map.
func sequence(ctx context.Context, cfg config.Config, req config.Restriction) (restrict.Sequence, error) {
	switch {
	case req.Seq != "":
		return restrict.Raw(req.Seq), nil
	case req.File != "":
		var (
			seq restrict.Sequence
			ok  bool
		)
		err := fasta.StreamRecordsPathCtx(ctx, req.File, func(r fasta.Record) error {
			seq, ok = restrict.Describe(r.Defline, r.Seq), true
			return errFirst
		})
		if err != nil && !errors.Is(err, errFirst) {
			return seq, err
		}
		if !ok {
			return seq, cmdutil.Usagef("%s holds no sequence", req.File)
		}
		return seq, nil
	}
	seq, ok, err := restrict.Find(ctx, cfg.GenomicPath(), req.Name)
	if err != nil {
		return seq, err
	}
	if !ok {
		return seq, cmdutil.Usagef("no sequence named %q in %s", req.Name, cfg.GenomicPath())
	}
	return seq, nil
}

// analyzer returns the compiled enzymes of class, rebuilding them when any
// of the definition files changed.
func (a *App) analyzer(cfg config.Config, class restrict.Class) (*restrict.Analyzer, error) {
	dir := cfg.RestrictionDataDir
	key := snapshot.FilesKey(
		filepath.Join(dir, class.File()),
		filepath.Join(dir, restrict.ThreePrime.File()),
		filepath.Join(dir, restrict.FivePrime.File()),
		filepath.Join(dir, restrict.Blunt.File()),
	) ^ snapshot.StringKey("workers", strconv.Itoa(cfg.Workers()))
	return a.analyzers.Get(key, func() (*restrict.Analyzer, error) {
		cat, err := restrict.LoadCatalog(dir)
		if err != nil {
			return nil, err
		}
		enzymes, err := cat.Enzymes(class)
		if err != nil {
			return nil, err
		}
		return restrict.NewAnalyzer(enzymes, cat.Types, cfg.Workers())
	})
}

func (a *App) mapSites(ctx context.Context, cfg config.Config, req config.Restriction, outw, stderr io.Writer) error {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	seq, err := sequence(ctx, cfg, req)
	if err != nil {
		return timedOut(ctx, cfg, err)
	}
	if len(seq.Residues) == 0 {
		return cmdutil.Usagef("empty sequence")
	}
	an, err := a.analyzer(cfg, req.Class)
	if err != nil {
		return err
	}
	hits, misses := a.analyzers.Stats()
	cmdutil.Infof(stderr, cfg.Verbose, "analyzer cache: %d held, %d hits, %d misses", a.analyzers.Len(), hits, misses)
	cmdutil.Infof(stderr, cfg.Verbose, "mapping %s (%s bp) with class %s", seq.Name, cmdutil.Count(len(seq.Residues)), req.Class)

	res, err := an.Analyze(ctx, seq.Residues, req.Class)
	if err != nil {
		return timedOut(ctx, cfg, err)
	}
	cmdutil.Infof(stderr, cfg.Verbose, "%d enzymes cut, %d do not", len(res.Enzymes), len(res.NotCut))

	var (
		dl   output.Downloads
		errs []error
	)
	if cfg.Reports {
		dir := report.Dir{Root: cfg.TmpDir, Compress: cfg.Compress}
		id := requestID(cfg, req, seq)
		if req.Class != restrict.NoCut {
			name := dir.Name(report.CutSitePrefix, id)
			if _, err := dir.Write(name, func(w io.Writer) error { return restrict.WriteCutSites(w, res.Enzymes) }); err != nil {
				errs = append(errs, err)
			} else {
				dl.CutSites = name
			}
		}
		if len(res.NotCut) > 0 {
			name := dir.Name(report.NotCutPrefix, id)
			if _, err := dir.Write(name, func(w io.Writer) error { return restrict.WriteNotCut(w, res.NotCut) }); err != nil {
				errs = append(errs, err)
			} else {
				dl.NotCut = name
			}
		}
	}
	var errMsg string
	if err := errors.Join(errs...); err != nil {
		cmdutil.Warnf(stderr, cfg.Quiet, "%v", err)
		errMsg = err.Error()
	}

	resp := output.ToAPIRestriction(seq, res, dl, errMsg)
	if cfg.ReportJSON && (dl.CutSites != "" || dl.NotCut != "") {
		name := dl.CutSites
		if name == "" {
			name = dl.NotCut
		}
		dir := report.Dir{Root: cfg.TmpDir}
		if _, err := dir.WriteJSON(report.Sidecar(name), resp); err != nil {
			cmdutil.Warnf(stderr, cfg.Quiet, "%v", err)
		}
	}
	if err := writers.RestrictionWriters.Write(cfg.Output, outw, writers.Restriction{Class: req.Class, Result: res, Response: resp}); err != nil {
		return err
	}
	if req.Class != restrict.NoCut && len(res.Enzymes) == 0 {
		return errNoMatch
	}
	return nil
}

// timedOut turns a deadline expiry into pipeline.ErrTimeout.
func timedOut(ctx context.Context, cfg config.Config, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", pipeline.ErrTimeout, cfg.Timeout)
	}
	return err
}

func requestID(cfg config.Config, req config.Restriction, seq restrict.Sequence) string {
	if cfg.ReportIDs != "content" {
		return report.RandomID()
	}
	return report.ContentID(seq.Defline, string(seq.Residues), req.Class.String())
}
