// internal/pipeline/pipeline.go
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"patmatch-core/fasta"
	"patmatch-core/hits"
	"patmatch-core/matcher"
	"patmatch-core/seqindex"
)

// ErrTimeout reports a search that exceeded Config.Timeout.
var ErrTimeout = fmt.Errorf("search timed out: %w", context.DeadlineExceeded)

// Config controls the scanning pipeline.
type Config struct {
	Threads   int           // number of worker goroutines (>=1)
	ChunkSize int           // bytes per chunk, rounded up to a line end; 0 = one chunk
	Timeout   time.Duration // per request; 0 = none
}

// Corpus is an indexed sequence file held in memory. It is read-only once
// built and may be shared between requests.
type Corpus struct {
	Path  string
	Data  []byte
	Table *seqindex.Table
}

// LoadCorpus reads and indexes path (plain, gzip or zstd).
func LoadCorpus(ctx context.Context, path string) (*Corpus, error) {
	data, err := fasta.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	tab, err := seqindex.BuildBytes(data)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", path, err)
	}
	return &Corpus{Path: path, Data: data, Table: tab}, nil
}

// Task is one strand of a search.
type Task struct {
	Searcher    Searcher
	Constraints hits.Constraints
}

// Chunks splits data into [lo,hi) ranges of at least size bytes, each ending
// just after a newline (or at the end of data).
func Chunks(data []byte, size int) [][2]int {
	if len(data) == 0 {
		return nil
	}
	if size <= 0 || size >= len(data) {
		return [][2]int{{0, len(data)}}
	}
	var out [][2]int
	for lo := 0; lo < len(data); {
		hi := lo + size
		if hi >= len(data) {
			hi = len(data)
		} else if nl := bytes.IndexByte(data[hi:], '\n'); nl >= 0 {
			hi += nl + 1
		} else {
			hi = len(data)
		}
		out = append(out, [2]int{lo, hi})
		lo = hi
	}
	return out
}

// Search runs every task over data and returns one batch per task, in task
// order, spans in file order. Timeout expiry is reported as ErrTimeout.
func Search(ctx context.Context, cfg Config, data []byte, tasks []Task) ([]hits.Batch, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	chunks := Chunks(data, cfg.ChunkSize)
	out := make([]hits.Batch, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tasks {
		out[i].Constraints = t.Constraints
		g.Go(func() error {
			spans, err := scan(gctx, cfg.Threads, data, chunks, t.Searcher)
			out[i].Spans = spans
			return err
		})
	}
	err := g.Wait()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w after %s", ErrTimeout, cfg.Timeout)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// scan fans chunks out to a worker pool and concatenates the results in
// chunk order.
func scan(ctx context.Context, threads int, data []byte, chunks [][2]int, s Searcher) ([]matcher.Span, error) {
	type result struct {
		idx   int
		spans []matcher.Span
		err   error
	}
	jobs := make(chan int, threads*2)
	results := make(chan result, threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					c := chunks[i]
					spans, err := s.All(ctx, data[c[0]:c[1]], c[0])
					select {
					case results <- result{idx: i, spans: spans, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr    error
		cwg     sync.WaitGroup
		byChunk = make([][]matcher.Span, len(chunks))
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if r.err != nil && cerr == nil {
				cerr = r.err
			}
			byChunk[r.idx] = r.spans
		}
	}()

	// Feed work
feed:
	for i := range chunks {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if cerr != nil {
		return nil, cerr
	}
	var n int
	for _, s := range byChunk {
		n += len(s)
	}
	spans := make([]matcher.Span, 0, n)
	for _, s := range byChunk {
		spans = append(spans, s...)
	}
	return spans, nil
}
