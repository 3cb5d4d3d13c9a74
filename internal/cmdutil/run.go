// internal/cmdutil/run.go
package cmdutil

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"patmatch-core/pattern"
	"patmatch-core/restrict"
	"patmatch/internal/pipeline"
	"patmatch/internal/writers"
)

// Exit codes shared by the commands.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitIO          = 3
	ExitTimeout     = 124
	ExitInterrupted = 130
)

// UsageError marks a bad command line or request value.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError.
func Usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// ExitCode maps an error to the process status.
func ExitCode(err error) int {
	var ue *UsageError
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, pipeline.ErrTimeout):
		return ExitTimeout
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.As(err, &ue),
		errors.Is(err, pattern.ErrInvalidPattern),
		errors.Is(err, restrict.ErrEnzymeFile):
		return ExitUsage
	}
	return ExitIO
}

// Fail prints err (unless it is a broken pipe or an interrupt) and returns
// its exit code.
func Fail(stderr io.Writer, err error) int {
	code := ExitCode(err)
	if code != ExitOK && code != ExitInterrupted {
		_, _ = fmt.Fprintln(stderr, "error:", err)
	}
	return code
}

// Flush flushes buffered stdout; a broken pipe is not an error.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return code
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitIO
	}
	return code
}
