// internal/report/report.go
package report

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"
)

// Report name prefixes.
const (
	PatmatchPrefix = "patmatch"
	CutSitePrefix  = "restrictionmapper"
	NotCutPrefix   = "restrictionmapper_not_cut_enzyme"
)

// OutputWriteError reports a report file that could not be written. It is a
// diagnostic: the results it would have held are still valid.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("could not write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }

// RandomID returns a fresh request id.
func RandomID() string { return uuid.NewString() }

// ContentID derives a stable id from the request parts, so identical
// requests share their report names.
func ContentID(parts ...string) string {
	h, _ := blake2b.New(16, nil)
	for _, p := range parts {
		_, _ = io.WriteString(h, p)
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Dir writes report files under Root.
type Dir struct {
	Root     string
	Compress string // "" | gz | zst
}

// Name builds "<prefix>.<id>" plus the compression suffix.
func (d Dir) Name(prefix, id string) string {
	name := prefix + "." + id
	switch d.Compress {
	case "gz":
		name += ".gz"
	case "zst":
		name += ".zst"
	}
	return name
}

// Write creates name under Root and lets fill write the content. The file
// is written to a temporary name and renamed on success; on failure nothing
// is left behind. Every error is an *OutputWriteError.
func (d Dir) Write(name string, fill func(io.Writer) error) (path string, err error) {
	path = filepath.Join(d.Root, name)
	defer func() {
		if err != nil {
			err = &OutputWriteError{Path: path, Err: err}
		}
	}()

	if err := os.MkdirAll(d.Root, 0o755); err != nil {
		return path, err
	}
	tmp, err := os.CreateTemp(d.Root, "."+name+".*")
	if err != nil {
		return path, err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriterSize(tmp, 64<<10)
	if err = encode(bw, name, fill); err != nil {
		return path, err
	}
	if err = bw.Flush(); err != nil {
		return path, err
	}
	if err = tmp.Close(); err != nil {
		return path, err
	}
	return path, os.Rename(tmp.Name(), path)
}

// encode wraps w with the compressor the name's suffix asks for.
func encode(w io.Writer, name string, fill func(io.Writer) error) error {
	switch {
	case strings.HasSuffix(name, ".gz"):
		zw := gzip.NewWriter(w)
		if err := fill(zw); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	case strings.HasSuffix(name, ".zst"):
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if err := fill(zw); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	}
	return fill(w)
}

// Sidecar names the JSON copy of the response stored next to report name.
// Sidecars are never compressed.
func Sidecar(name string) string {
	name = strings.TrimSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".zst")
	return name + ".json"
}

// WriteJSON writes v as indented JSON.
func (d Dir) WriteJSON(name string, v any) (string, error) {
	return d.Write(name, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}
