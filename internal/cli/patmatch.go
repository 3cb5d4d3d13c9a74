// internal/cli/patmatch.go
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"patmatch-core/hits"
	"patmatch-core/matcher"
	"patmatch/internal/cmdutil"
	"patmatch/internal/config"
)

// SearchFunc runs one typed pattern search.
type SearchFunc func(ctx context.Context, cfg config.Config, req config.Search) error

type patmatchFlags struct {
	runtimeFlags
	pattern  string
	seqType  string
	strand   string
	dataset  string
	kind     string
	mismatch string
	maxHits  string
	seqName  string
}

// NewPatmatchCommand builds the patmatch command. v receives the flag
// bindings; run is called with the validated request.
func NewPatmatchCommand(v *viper.Viper, run SearchFunc) *cobra.Command {
	var f patmatchFlags
	cmd := newCommand("patmatch [flags] [PATTERN]",
		"search sequence datasets for a pattern",
		`patmatch finds every occurrence of a nucleotide or peptide pattern in a
sequence dataset, optionally allowing insertions, deletions and
substitutions, and reports the hits with their coordinates.

Patterns use IUPAC codes, character classes ([ACG], [^P]), repeats
(N{2,5}, (AG){3}) and the anchors < (start of sequence) and > (end).`)
	cmd.Example = `  patmatch -p GAATTC
  patmatch -d orf_pep -s peptide 'MK[^P]{2,4}<'
  patmatch -d chr -p 'TATA[AT]A' -m 1s --strand watson -o json
  patmatch -d orf_dna --seqname YAL001C`
	cmd.Args = maxArgs(1)

	fs := cmd.Flags()
	fs.StringVarP(&f.pattern, "pattern", "p", "", "pattern to search for (or PATTERN)")
	fs.StringVarP(&f.seqType, "seqtype", "s", "nucleotide", "pattern type: nucleotide | peptide")
	fs.StringVar(&f.strand, "strand", "both", "strands to search: both | watson | crick")
	fs.StringVarP(&f.dataset, "dataset", "d", "", "dataset name under --data-dir, a path, or - for stdin")
	fs.StringVar(&f.kind, "kind", "auto", "dataset kind: auto | generic | orf | notfeature")
	fs.StringVarP(&f.mismatch, "mismatch", "m", "0", "error budget, e.g. 2 or 1s or 2ids")
	fs.StringVar(&f.maxHits, "max-hits", "", `hit cap, or "no limit" (default from config)`)
	fs.StringVar(&f.seqName, "seqname", "", "print the named sequence instead of searching")
	fs.Int("min-tokens", v.GetInt("min_tokens"), "shortest accepted pattern, in residues")
	bind(fs, v, binding{"min-tokens", "min_tokens"})
	addRuntimeFlags(fs, v, "data_dir", &f.runtimeFlags)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			if f.pattern != "" {
				return cmdutil.Usagef("pattern given twice (--pattern and PATTERN)")
			}
			f.pattern = args[0]
		}
		cfg, err := loadConfig(v, &f.runtimeFlags)
		if err != nil {
			return err
		}
		req, err := f.search(cfg)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg, req)
	}
	return cmd
}

func (f *patmatchFlags) search(cfg config.Config) (config.Search, error) {
	req := config.Search{Pattern: f.pattern, Dataset: f.dataset, SeqName: f.seqName}
	if req.Pattern == "" && req.SeqName == "" {
		return req, cmdutil.Usagef("provide a pattern (--pattern or PATTERN) or --seqname")
	}
	var err error
	if req.SeqType, err = config.ParseSeqType(f.seqType); err != nil {
		return req, &cmdutil.UsageError{Err: err}
	}
	if req.Strand, err = config.ParseStrand(f.strand); err != nil {
		return req, &cmdutil.UsageError{Err: err}
	}
	if req.Kind, req.KindSet, err = hits.ParseKind(f.kind); err != nil {
		return req, &cmdutil.UsageError{Err: err}
	}
	if req.Budget, err = matcher.ParseMismatch(f.mismatch); err != nil {
		return req, &cmdutil.UsageError{Err: err}
	}
	switch {
	case f.maxHits != "":
		req.MaxHits = hits.ParseMaxHits(f.maxHits)
	case cfg.MaxHits > 0:
		req.MaxHits = min(cfg.MaxHits, hits.MaxHitsCeiling)
	default:
		req.MaxHits = hits.DefaultMaxHits
	}
	return req, nil
}
