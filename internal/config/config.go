// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override (PATMATCH_DATA_DIR, ...).
const EnvPrefix = "PATMATCH"

// Config is the runtime configuration shared by both commands. Values come
// from flags, then PATMATCH_* environment variables, then an optional config
// file, then the defaults below.
type Config struct {
	// directory holding <dataset>.seq files and locus.txt
	DataDir string `mapstructure:"data_dir"`
	// directory holding rest_enzymes* and orf_genomic.seq
	RestrictionDataDir string `mapstructure:"restriction_data_dir"`
	// where report files are written
	TmpDir string `mapstructure:"tmp_dir"`

	MaxHits   int `mapstructure:"max_hits"`
	MinTokens int `mapstructure:"min_tokens"`

	Threads   int           `mapstructure:"threads"`
	ChunkSize int           `mapstructure:"chunk_size"`
	Timeout   time.Duration `mapstructure:"timeout"` // 0 = none

	Output     string `mapstructure:"output"`      // text | json | jsonl
	Reports    bool   `mapstructure:"reports"`     // write downloadable report files
	Compress   string `mapstructure:"compress"`    // "" | gz | zst, applied to reports
	ReportIDs  string `mapstructure:"report_ids"`  // random | content
	ReportJSON bool   `mapstructure:"report_json"` // JSON response stored next to each report

	Quiet   bool `mapstructure:"quiet"`
	Verbose bool `mapstructure:"verbose"`

	NoMatchExitCode int `mapstructure:"no_match_exit_code"`
}

// SetDefaults registers every key so env overrides and Unmarshal see them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "/data/patmatch")
	v.SetDefault("restriction_data_dir", "/data/restriction_mapper")
	v.SetDefault("tmp_dir", os.TempDir())
	v.SetDefault("max_hits", 500)
	v.SetDefault("min_tokens", 3)
	v.SetDefault("threads", runtime.NumCPU())
	v.SetDefault("chunk_size", 1<<20)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("output", "text")
	v.SetDefault("reports", true)
	v.SetDefault("compress", "")
	v.SetDefault("report_ids", "random")
	v.SetDefault("report_json", false)
	v.SetDefault("quiet", false)
	v.SetDefault("verbose", false)
	v.SetDefault("no_match_exit_code", 0)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and decodes v.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, c.Validate()
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if c.Threads < 0 {
		errs = append(errs, errors.New("threads must be >= 0"))
	}
	if c.ChunkSize < 0 {
		errs = append(errs, errors.New("chunk-size must be >= 0"))
	}
	if c.Timeout < 0 {
		errs = append(errs, errors.New("timeout must be >= 0"))
	}
	switch c.Output {
	case "text", "json", "jsonl":
	default:
		errs = append(errs, fmt.Errorf("invalid output %q (text | json | jsonl)", c.Output))
	}
	switch c.Compress {
	case "", "gz", "zst":
	default:
		errs = append(errs, fmt.Errorf("invalid compress %q (gz | zst)", c.Compress))
	}
	switch c.ReportIDs {
	case "random", "content":
	default:
		errs = append(errs, fmt.Errorf("invalid report-ids %q (random | content)", c.ReportIDs))
	}
	return errors.Join(errs...)
}

// Workers is Threads with 0 meaning all CPUs.
func (c Config) Workers() int {
	if c.Threads <= 0 {
		return runtime.NumCPU()
	}
	return c.Threads
}
