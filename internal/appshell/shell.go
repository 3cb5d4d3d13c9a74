// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"patmatch/internal/cmdutil"
)

// RunFunc is the entry point of one command.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs a command with the process arguments and exits. SIGINT and
// SIGTERM cancel the run; a canceled run that reports success still exits
// with ExitInterrupted. No arguments means help.
func Main(run RunFunc) {
	os.Exit(exec(run, os.Args[1:]))
}

func exec(run RunFunc, argv []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitInterrupted
	}
	return code
}
