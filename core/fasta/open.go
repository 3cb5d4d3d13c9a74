// core/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type zstdCloser struct{ d *zstd.Decoder }

func (z zstdCloser) Close() error { z.d.Close(); return nil }

// Open returns a reader over the decompressed contents of path.
// "-" reads stdin. gzip and zstd are detected by magic bytes or suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return wrapReader(io.NopCloser(os.Stdin), "")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return wrapReader(fh, path)
}

func wrapReader(rc io.ReadCloser, path string) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(rc, 64*1024)
	sig, _ := br.Peek(4)
	switch {
	case bytes.HasPrefix(sig, gzipMagic) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}, nil
	case bytes.HasPrefix(sig, zstdMagic) || strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(br)
		if err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zstdCloser{zr}, rc}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{rc}}, nil
}

// Load reads the whole decompressed file into memory.
// Cancellation is checked between 1 MiB reads.
func Load(ctx context.Context, path string) ([]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if fi, err := os.Stat(path); err == nil && path != "-" {
		buf.Grow(int(fi.Size()) + 1)
	}
	chunk := make([]byte, 1<<20)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := rc.Read(chunk)
		buf.Write(chunk[:n])
		if errors.Is(err, io.EOF) {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
}
