// Package writers turns command results into stdout output.
//
// Design:
//   - Writers own all presentation knowledge (TSV, JSON, JSONL).
//   - Core packages stay domain-only; apps only pick a format.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
