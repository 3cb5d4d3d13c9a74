// internal/snapshot/snapshot.go
package snapshot

import (
	"encoding/binary"
	"os"
	"sync"
	"sync/atomic"

	"github.com/zeebo/xxh3"
)

// Key identifies one version of a cached value.
type Key uint64

// FileKey hashes the identity of path (name, size, modification time) with
// any extra discriminators, so an edited file gets a new key.
func FileKey(path string, extra ...string) (Key, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	h := xxh3.New()
	_, _ = h.WriteString(path)
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(fi.Size()))
	binary.LittleEndian.PutUint64(buf[8:], uint64(fi.ModTime().UnixNano()))
	_, _ = h.Write(buf[:])
	for _, e := range extra {
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(e)
	}
	return Key(h.Sum64()), nil
}

// FilesKey is FileKey over several files, any of which may be missing.
func FilesKey(paths ...string) Key {
	h := xxh3.New()
	var buf [16]byte
	for _, p := range paths {
		_, _ = h.WriteString(p)
		if fi, err := os.Stat(p); err == nil {
			binary.LittleEndian.PutUint64(buf[:8], uint64(fi.Size()))
			binary.LittleEndian.PutUint64(buf[8:], uint64(fi.ModTime().UnixNano()))
			_, _ = h.Write(buf[:])
		}
		_, _ = h.Write([]byte{0})
	}
	return Key(h.Sum64())
}

// StringKey hashes plain parts, for values not backed by a file.
func StringKey(parts ...string) Key {
	h := xxh3.New()
	for _, p := range parts {
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
	}
	return Key(h.Sum64())
}

// Store caches immutable values by key. Readers never lock: the table is
// replaced wholesale on every insert and values are never mutated after
// publication.
type Store[T any] struct {
	table atomic.Pointer[map[Key]*T]
	mu    sync.Mutex // serializes loads and table swaps

	hits, misses atomic.Int64
}

// Get returns the value for key, calling load once if it is absent.
// A failed load caches nothing.
func (s *Store[T]) Get(key Key, load func() (*T, error)) (*T, error) {
	if v, ok := s.lookup(key); ok {
		s.hits.Add(1)
		return v, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.lookup(key); ok {
		s.hits.Add(1)
		return v, nil
	}
	s.misses.Add(1)
	v, err := load()
	if err != nil {
		return nil, err
	}
	next := map[Key]*T{key: v}
	if cur := s.table.Load(); cur != nil {
		for k, old := range *cur {
			next[k] = old
		}
	}
	s.table.Store(&next)
	return v, nil
}

func (s *Store[T]) lookup(key Key) (*T, bool) {
	cur := s.table.Load()
	if cur == nil {
		return nil, false
	}
	v, ok := (*cur)[key]
	return v, ok
}

// Len is the number of cached values.
func (s *Store[T]) Len() int {
	if cur := s.table.Load(); cur != nil {
		return len(*cur)
	}
	return 0
}

// Stats reports cache hits and misses.
func (s *Store[T]) Stats() (hits, misses int64) { return s.hits.Load(), s.misses.Load() }
