// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"io"
	"sync"

	"github.com/goccy/go-json"

	"patmatch/internal/jsonutil"
)

var bwPool = sync.Pool{
	New: func() any { return bufio.NewWriterSize(io.Discard, 64<<10) },
}

// WriteAll encodes items one per line through a pooled buffer. encode
// converts an item to its wire type; an error for which isBroken reports
// true (a closed pipe) ends the stream without failing it.
func WriteAll[T any](out io.Writer, items []T, encode func(*json.Encoder, T) error, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := jsonutil.NewEncoder(bw)
	for _, it := range items {
		if err := encode(enc, it); err != nil {
			if isBroken(err) {
				return nil
			}
			return err
		}
	}
	if err := bw.Flush(); err != nil && !isBroken(err) {
		return err
	}
	return nil
}
