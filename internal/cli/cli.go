// internal/cli/cli.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"patmatch/internal/cmdutil"
	"patmatch/internal/config"
	"patmatch/internal/version"
)

// binding ties a flag to the config key it overrides.
type binding struct{ flag, key string }

// runtimeFlags are the flags both commands share. Their values live in
// viper; only the config file path is kept here.
type runtimeFlags struct {
	configFile string
}

// addRuntimeFlags registers the shared flags and binds them to v. dataKey
// selects which data directory --data-dir overrides.
func addRuntimeFlags(fs *pflag.FlagSet, v *viper.Viper, dataKey string, rf *runtimeFlags) {
	fs.StringVar(&rf.configFile, "config", "", "config file (yaml, toml or json)")

	fs.String("data-dir", v.GetString(dataKey), "directory holding the data files")
	fs.String("tmp-dir", v.GetString("tmp_dir"), "directory for report files")
	fs.IntP("threads", "t", 0, "number of worker threads (0 = all CPUs)")
	fs.Int("chunk-size", v.GetInt("chunk_size"), "bytes per scan chunk, rounded to a line end (0 = no chunking)")
	fs.Duration("timeout", v.GetDuration("timeout"), "give up after this long (0 = never)")

	fs.StringP("output", "o", v.GetString("output"), "output format: text | json | jsonl")
	fs.Bool("reports", v.GetBool("reports"), "write downloadable report files")
	fs.String("compress", v.GetString("compress"), "compress report files: gz | zst")
	fs.String("report-ids", v.GetString("report_ids"), "report names: random | content")
	fs.Bool("report-json", false, "store the JSON response next to each report")

	fs.BoolP("quiet", "q", false, "suppress warnings")
	fs.Bool("verbose", false, "print progress information")
	fs.Int("no-match-exit-code", v.GetInt("no_match_exit_code"), "exit code when nothing matched")

	bind(fs, v,
		binding{"data-dir", dataKey},
		binding{"tmp-dir", "tmp_dir"},
		binding{"threads", "threads"},
		binding{"chunk-size", "chunk_size"},
		binding{"timeout", "timeout"},
		binding{"output", "output"},
		binding{"reports", "reports"},
		binding{"compress", "compress"},
		binding{"report-ids", "report_ids"},
		binding{"report-json", "report_json"},
		binding{"quiet", "quiet"},
		binding{"verbose", "verbose"},
		binding{"no-match-exit-code", "no_match_exit_code"},
	)
}

func bind(fs *pflag.FlagSet, v *viper.Viper, bs ...binding) {
	for _, b := range bs {
		if err := v.BindPFlag(b.key, fs.Lookup(b.flag)); err != nil {
			panic(fmt.Sprintf("bind --%s: %v", b.flag, err))
		}
	}
}

// loadConfig merges the config file into v and validates the result.
func loadConfig(v *viper.Viper, rf *runtimeFlags) (config.Config, error) {
	cfg, err := config.Load(v, rf.configFile)
	if err != nil {
		return cfg, &cmdutil.UsageError{Err: err}
	}
	return cfg, nil
}

// newCommand sets the behavior both commands share: errors are returned,
// not printed, and every parse failure is a usage error.
func newCommand(use, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetVersionTemplate(cmd.Name() + " version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cmdutil.UsageError{Err: err}
	})
	cmd.Flags().SortFlags = false
	return cmd
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return cmdutil.Usagef("unexpected arguments: %q", args[n:])
		}
		return nil
	}
}
