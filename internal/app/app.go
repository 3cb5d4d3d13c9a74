// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"io"

	"patmatch-core/hits"
	"patmatch/internal/cli"
	"patmatch/internal/cmdutil"
	"patmatch/internal/config"
	"patmatch/internal/pipeline"
	"patmatch/internal/snapshot"
)

// App runs patmatch requests. Indexed datasets and locus tables are cached
// across runs of the same App and reloaded when their files change.
type App struct {
	corpora snapshot.Store[pipeline.Corpus]
	loci    snapshot.Store[map[string]hits.Locus]
}

// New returns an App with empty caches.
func New() *App { return &App{} }

// errNoMatch is returned by a request that completed without results.
var errNoMatch = errors.New("no match")

// Run executes one command line.
func (a *App) Run(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	noMatch := 0
	cmd := cli.NewPatmatchCommand(config.New(), func(ctx context.Context, cfg config.Config, req config.Search) error {
		noMatch = cfg.NoMatchExitCode
		if req.SeqName != "" {
			return a.retrieve(ctx, cfg, req, outw, stderr)
		}
		return a.search(ctx, cfg, req, outw, stderr)
	})
	cmd.SetArgs(append([]string{}, argv...))
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	switch {
	case errors.Is(err, errNoMatch):
		return cmdutil.Flush(outw, stderr, noMatch)
	case err != nil:
		code := cmdutil.Fail(stderr, err)
		return cmdutil.Flush(outw, stderr, code)
	}
	return cmdutil.Flush(outw, stderr, cmdutil.ExitOK)
}

// RunContext runs argv on a fresh App.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return New().Run(parent, argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
