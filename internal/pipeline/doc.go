// Package pipeline runs compiled patterns over an in-memory sequence file.
// The file is split into line-aligned chunks scanned by a bounded worker
// pool; each strand is an independent task. Spans never cross a line break,
// so per-chunk results are exact and are merged back in file order.
//
// The only capability required from the matcher is Searcher.
package pipeline
