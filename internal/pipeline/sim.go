// internal/pipeline/sim.go
package pipeline

import (
	"context"

	"patmatch-core/matcher"
)

// Searcher is the minimal capability the pipeline needs.
// *matcher.Matcher satisfies it; tests may use fakes.
type Searcher interface {
	All(ctx context.Context, text []byte, base int) ([]matcher.Span, error)
}
