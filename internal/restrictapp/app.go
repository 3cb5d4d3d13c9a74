// internal/restrictapp/app.go
package restrictapp

import (
	"bufio"
	"context"
	"errors"
	"io"

	"patmatch-core/restrict"
	"patmatch/internal/cli"
	"patmatch/internal/cmdutil"
	"patmatch/internal/config"
	"patmatch/internal/snapshot"
)

// App runs restriction-map requests. Compiled analyzers are cached per
// enzyme class and data directory.
type App struct {
	analyzers snapshot.Store[restrict.Analyzer]
}

func New() *App { return &App{} }

var errNoMatch = errors.New("no enzyme cuts")

// Run executes one command line.
func (a *App) Run(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	noMatch := 0
	cmd := cli.NewRestrictionCommand(config.New(), func(ctx context.Context, cfg config.Config, req config.Restriction) error {
		noMatch = cfg.NoMatchExitCode
		return a.mapSites(ctx, cfg, req, outw, stderr)
	})
	cmd.SetArgs(append([]string{}, argv...))
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	switch {
	case errors.Is(err, errNoMatch):
		return cmdutil.Flush(outw, stderr, noMatch)
	case err != nil:
		return cmdutil.Flush(outw, stderr, cmdutil.Fail(stderr, err))
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
