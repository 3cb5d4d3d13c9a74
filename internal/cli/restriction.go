// internal/cli/restriction.go
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"patmatch-core/restrict"
	"patmatch/internal/cmdutil"
	"patmatch/internal/config"
)

// RestrictionFunc runs one typed restriction-map request.
type RestrictionFunc func(ctx context.Context, cfg config.Config, req config.Restriction) error

type restrictionFlags struct {
	runtimeFlags
	name  string
	seq   string
	file  string
	class string
}

// NewRestrictionCommand builds the restrictionmapper command.
func NewRestrictionCommand(v *viper.Viper, run RestrictionFunc) *cobra.Command {
	var f restrictionFlags
	cmd := newCommand("restrictionmapper [flags]",
		"map restriction enzyme cut sites",
		`restrictionmapper finds where each enzyme of a class cuts a DNA
sequence, on both strands, and reports the cut positions and the
resulting fragment sizes. The sequence is looked up by name in the
genomic dataset, given raw with --seq, or read from a FASTA file.

Classes: all, 3'overhang, 5'overhang, blunt, six-base, cut-once,
cut-twice, no-cut.`)
	cmd.Example = `  restrictionmapper -n ACT1
  restrictionmapper --seq GAATTCAAGGATCC -c cut-once
  restrictionmapper -f insert.fa -c blunt -o json`
	cmd.Args = maxArgs(0)

	fs := cmd.Flags()
	fs.StringVarP(&f.name, "name", "n", "", "systematic name, gene name or SGDID to look up")
	fs.StringVar(&f.seq, "seq", "", "raw DNA sequence")
	fs.StringVarP(&f.file, "file", "f", "", "FASTA file; its first record is mapped")
	fs.StringVarP(&f.class, "class", "c", "all", "enzyme class")
	addRuntimeFlags(fs, v, "restriction_data_dir", &f.runtimeFlags)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(v, &f.runtimeFlags)
		if err != nil {
			return err
		}
		req, err := f.restriction()
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg, req)
	}
	return cmd
}

func (f *restrictionFlags) restriction() (config.Restriction, error) {
	req := config.Restriction{Name: f.name, Seq: f.seq, File: f.file}
	given := 0
	for _, s := range []string{f.name, f.seq, f.file} {
		if s != "" {
			given++
		}
	}
	if given != 1 {
		return req, cmdutil.Usagef("provide exactly one of --name, --seq or --file")
	}
	var err error
	if req.Class, err = restrict.ParseClass(f.class); err != nil {
		return req, &cmdutil.UsageError{Err: err}
	}
	return req, nil
}
