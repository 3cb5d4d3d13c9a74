// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Infof prints only when verbose.
func Infof(dst io.Writer, verbose bool, format string, a ...any) {
	if !verbose {
		return
	}
	_, _ = fmt.Fprintf(dst, "INFO: "+format+"\n", a...)
}

// Bytes renders a size for log lines ("1.2 MB").
func Bytes(n int) string { return humanize.Bytes(uint64(n)) }

// Count renders a count with thousands separators ("12,345").
func Count(n int) string { return humanize.Comma(int64(n)) }
