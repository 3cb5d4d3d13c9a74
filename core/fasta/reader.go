// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
)

// Record is one parsed FASTA record. Seq has line breaks and blanks removed.
type Record struct {
	Name    string
	Defline string
	Seq     []byte
}

// StreamRecordsCtx parses FASTA from r and calls emit once per record.
// Returning a non-nil error from emit stops the scan.
func StreamRecordsCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur    Record
		inRec  bool
		seqBuf = make([]byte, 0, 1<<16)
	)
	flush := func() error {
		if !inRec {
			return nil
		}
		cur.Seq = append([]byte(nil), seqBuf...)
		return emit(cur)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimRight(sc.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			defline := string(line)
			cur = Record{Name: HeaderName(defline), Defline: NormalizeDefline(defline)}
			seqBuf = seqBuf[:0]
			inRec = true
			continue
		}
		seqBuf = append(seqBuf, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamRecordsPathCtx opens path (see Open) and streams its records.
func StreamRecordsPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamRecordsCtx(ctx, rc, emit)
}

// HeaderName returns the first whitespace-delimited word of a header line,
// without the leading '>'.
func HeaderName(defline string) string {
	s := strings.TrimSpace(strings.TrimPrefix(defline, ">"))
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}

// NormalizeDefline trims the line and replaces double quotes with single ones.
func NormalizeDefline(defline string) string {
	return strings.ReplaceAll(strings.TrimSpace(defline), `"`, "'")
}
