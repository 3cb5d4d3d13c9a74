// internal/app/cache.go
package app

import (
	"context"
	"errors"
	"io/fs"

	"patmatch-core/hits"
	"patmatch/internal/pipeline"
	"patmatch/internal/snapshot"
)

// corpus returns the indexed dataset at path. Standard input is never
// cached.
func (a *App) corpus(ctx context.Context, path string) (*pipeline.Corpus, error) {
	if path == "-" {
		return pipeline.LoadCorpus(ctx, path)
	}
	key, err := snapshot.FileKey(path)
	if err != nil {
		return nil, err
	}
	return a.corpora.Get(key, func() (*pipeline.Corpus, error) {
		return pipeline.LoadCorpus(ctx, path)
	})
}

// locus returns the annotation table at path; a missing file is an empty
// table.
func (a *App) locus(path string) (map[string]hits.Locus, error) {
	key, err := snapshot.FileKey(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]hits.Locus{}, nil
	}
	if err != nil {
		return nil, err
	}
	loc, err := a.loci.Get(key, func() (*map[string]hits.Locus, error) {
		m, err := hits.LoadLocusFile(path)
		if err != nil {
			return nil, err
		}
		return &m, nil
	})
	if err != nil {
		return nil, err
	}
	return *loc, nil
}
