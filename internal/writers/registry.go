// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"patmatch-core/hits"
	"patmatch-core/restrict"
	"patmatch/pkg/api"
)

// Registry maps an output format to its writer.
type Registry[T any] struct {
	kind string
	fns  map[string]func(io.Writer, T) error
}

func newRegistry[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, fns: map[string]func(io.Writer, T) error{}}
}

// Register installs fn for format (last wins).
func (r *Registry[T]) Register(format string, fn func(io.Writer, T) error) { r.fns[format] = fn }

// Formats lists the registered formats.
func (r *Registry[T]) Formats() []string {
	out := make([]string, 0, len(r.fns))
	for f := range r.fns {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches payload to the writer of format.
func (r *Registry[T]) Write(format string, w io.Writer, payload T) error {
	fn, ok := r.fns[format]
	if !ok {
		return fmt.Errorf("unknown %s format %q (no writer registered)", r.kind, format)
	}
	return fn(w, payload)
}

// Search is the payload of a pattern search.
type Search struct {
	Result   *hits.Result
	Response api.PatmatchResponseV1
}

// Restriction is the payload of a restriction map.
type Restriction struct {
	Class    restrict.Class
	Result   *restrict.Result
	Response api.RestrictionResponseV1
}

// Writer registries, filled by init blocks of the format files.
var (
	SearchWriters      = newRegistry[Search]("search")
	SequenceWriters    = newRegistry[api.SequenceV1]("sequence")
	RestrictionWriters = newRegistry[Restriction]("restriction")
)
