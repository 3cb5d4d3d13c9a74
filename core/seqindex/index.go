// core/seqindex/index.go
package seqindex

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"patmatch-core/fasta"
)

// HeaderMarker prefixes the name stored for a header-line offset.
const HeaderMarker = ">"

// Record describes one sequence of an indexed file.
type Record struct {
	Name         string // first word of the header, separator kept
	Defline      string // quote-normalized header line
	HeaderOffset int
	DataOffset   int
	Length       int  // residues, trailing stop '*' excluded
	HasStop      bool // sequence ended with '*'
}

// CanonicalName is Name without the trailing ',' some corpora append.
func (r Record) CanonicalName() string { return strings.TrimRight(r.Name, ",") }

// Entry is one row of the offset table.
type Entry struct {
	Offset int
	Name   string // ">name" for header offsets, "name" for data offsets
	Record int    // index into Table.Records
}

// IsHeader reports whether the entry marks a header line.
func (e Entry) IsHeader() bool { return strings.HasPrefix(e.Name, HeaderMarker) }

// Table is an immutable offset index over one sequence file.
type Table struct {
	Entries []Entry
	Records []Record
	Size    int // bytes scanned

	offsets []int
	byName  map[string]int
}

// Build scans r once and indexes every record. Invalid UTF-8 in headers is
// replaced, never rejected.
func Build(r io.Reader) (*Table, error) {
	br := bufio.NewReaderSize(r, 256*1024)
	t := &Table{byName: make(map[string]int)}

	var (
		count   int
		cur     = -1
		lastRes byte
		line    []byte
	)
	closeRecord := func() {
		if cur < 0 {
			return
		}
		if lastRes == '*' {
			t.Records[cur].HasStop = true
			t.Records[cur].Length--
		}
	}

	for {
		chunk, err := br.ReadSlice('\n')
		line = append(line[:0], chunk...)
		for errors.Is(err, bufio.ErrBufferFull) {
			chunk, err = br.ReadSlice('\n')
			line = append(line, chunk...)
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("index scan: %w", err)
		}
		if len(line) > 0 {
			if line[0] == '>' {
				if name, defline, ok := parseHeader(line); ok {
					closeRecord()
					t.Records = append(t.Records, Record{
						Name:         name,
						Defline:      defline,
						HeaderOffset: count,
						DataOffset:   count + len(line),
					})
					cur = len(t.Records) - 1
					lastRes = 0
					// an empty record's data offset coincides with this header
					if n := len(t.Entries); n > 0 && t.Entries[n-1].Offset == count {
						t.Entries = t.Entries[:n-1]
					}
					t.Entries = append(t.Entries,
						Entry{Offset: count, Name: HeaderMarker + name, Record: cur},
						Entry{Offset: count + len(line), Name: name, Record: cur},
					)
					if _, dup := t.byName[name]; !dup {
						t.byName[name] = cur
						t.byName[strings.TrimRight(name, ",")] = cur
					}
				}
			} else if cur >= 0 {
				res := bytes.TrimSpace(line)
				if len(res) > 0 {
					t.Records[cur].Length += len(res)
					lastRes = res[len(res)-1]
				}
			}
			count += len(line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}
	closeRecord()
	t.Size = count
	t.offsets = make([]int, len(t.Entries))
	for i, e := range t.Entries {
		t.offsets[i] = e.Offset
	}
	return t, nil
}

// BuildBytes indexes an in-memory file.
func BuildBytes(data []byte) (*Table, error) { return Build(bytes.NewReader(data)) }

func parseHeader(line []byte) (name, defline string, ok bool) {
	text := strings.ToValidUTF8(string(line), "�")
	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return "", "", false
	}
	return fields[0], fasta.NormalizeDefline(text), true
}

// Offsets returns the sorted offset column. Callers must not modify it.
func (t *Table) Offsets() []int { return t.offsets }

// Lookup finds a record by name, with or without its trailing separator.
func (t *Table) Lookup(name string) (Record, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Record{}, false
	}
	return t.Records[i], true
}

// Sequence returns the residues of rec from data, line breaks removed.
// data must be the bytes the table was built from.
func (t *Table) Sequence(data []byte, rec Record) []byte {
	end := len(data)
	next := sort.Search(len(t.Records), func(i int) bool { return t.Records[i].HeaderOffset > rec.HeaderOffset })
	if next < len(t.Records) {
		end = t.Records[next].HeaderOffset
	}
	if rec.DataOffset > end {
		return nil
	}
	raw := data[rec.DataOffset:end]
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		switch b {
		case '\n', '\r', ' ', '\t':
		default:
			out = append(out, b)
		}
	}
	return out
}
