package fasta

import (
	"bytes"
	"io"
	"iter"
	"strings"
)

// Sequence is a fully materialized record collection: the eager
// counterpart to Scanner for inputs that fit in memory, and the
// assembly point for records built from bare codes or raw characters.
type Sequence struct {
	records []Record
}

// ReadAll parses everything from r into a Sequence.
func ReadAll(r io.Reader) (*Sequence, error) {
	sc := NewScanner(r)
	var records []Record
	for sc.Scan() {
		records = append(records, sc.Record())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Sequence{records: records}, nil
}

// NewSequence adopts records as a Sequence. The slice is not copied.
func NewSequence(records []Record) *Sequence {
	return &Sequence{records: records}
}

// FromCodes builds a Sequence from bare codes with empty metadata.
func FromCodes(codes []Code) *Sequence {
	records := make([]Record, len(codes))
	for i, c := range codes {
		records[i] = Record{Code: c}
	}
	return &Sequence{records: records}
}

// FromRaw builds a Sequence from raw characters, assigning positions
// 0..n-1 and empty metadata.
func FromRaw(raw string) *Sequence {
	codes := make([]Code, 0, len(raw))
	var position int64
	for _, r := range raw {
		codes = append(codes, Code{Rune: r, Position: position})
		position++
	}
	return FromCodes(codes)
}

// Len returns the number of records.
func (s *Sequence) Len() int {
	return len(s.records)
}

// Records returns the underlying record slice. The slice is shared,
// not copied.
func (s *Sequence) Records() []Record {
	return s.records
}

// Codes returns the codes without their metadata.
func (s *Sequence) Codes() []Code {
	codes := make([]Code, len(s.records))
	for i, rec := range s.records {
		codes[i] = rec.Code
	}
	return codes
}

// Runes returns the bare code characters in read order.
func (s *Sequence) Runes() []rune {
	runes := make([]rune, len(s.records))
	for i, rec := range s.records {
		runes[i] = rec.Code.Rune
	}
	return runes
}

// String returns the code characters as one string, without metadata
// and without wrapping.
func (s *Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s.records))
	for _, rec := range s.records {
		b.WriteRune(rec.Code.Rune)
	}
	return b.String()
}

// All returns the records as a range-over-func iterator compatible
// with WriteAll. Iteration never yields an error.
func (s *Sequence) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for _, rec := range s.records {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// WriteTo serializes the sequence as FASTA text to w. It implements
// io.WriterTo; the count reflects bytes actually handed to w.
func (s *Sequence) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	fw := NewWriter(cw)
	for _, rec := range s.records {
		if err := fw.WriteRecord(rec); err != nil {
			return cw.n, err
		}
	}
	err := fw.Flush()
	return cw.n, err
}

// MarshalText renders the sequence as FASTA text. It implements
// encoding.TextMarshaler.
func (s *Sequence) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
