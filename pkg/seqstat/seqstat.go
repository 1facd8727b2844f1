// Package seqstat computes streaming statistics over FASTA records:
// sequence counts, lengths, residue frequencies, and GC fractions.
// It folds one record at a time, so genome-scale inputs never
// materialize in memory.
package seqstat

import (
	"iter"
	"unicode"

	"github.com/yaklabco/gofasta/pkg/fasta"
)

// sequenceState tracks one sequence while its codes stream past.
type sequenceState struct {
	description string
	length      int64
	gcCount     int64
	baseCount   int64
}

// Accumulator folds records into per-sequence statistics in a single
// pass. The zero value is not usable; call NewAccumulator.
type Accumulator struct {
	path      string
	sequences []sequenceState
	current   *sequenceState
	comments  int
	residues  map[string]int64
}

// NewAccumulator returns an empty accumulator for one input.
func NewAccumulator(path string) *Accumulator {
	return &Accumulator{
		path:     path,
		residues: make(map[string]int64),
	}
}

// Add folds one record. A record carrying a fresh description starts a
// new sequence; comment blocks and blank metadata transitions continue
// the current one.
func (a *Accumulator) Add(rec fasta.Record) {
	if rec.Meta.CommentChanged {
		a.comments += len(rec.Meta.Comments)
	}

	newHeader := rec.Meta.DescriptionChanged && len(rec.Meta.Descriptions) > 0
	if a.current == nil || newHeader {
		a.sequences = append(a.sequences, sequenceState{})
		a.current = &a.sequences[len(a.sequences)-1]
		if newHeader {
			// The nearest header names the sequence.
			a.current.description = rec.Meta.Descriptions[len(rec.Meta.Descriptions)-1]
		}
	}

	r := unicode.ToUpper(rec.Code.Rune)
	a.current.length++
	a.residues[string(r)]++
	switch r {
	case 'G', 'C':
		a.current.gcCount++
		a.current.baseCount++
	case 'A', 'T', 'U':
		a.current.baseCount++
	}
}

// Stats computes the report for everything folded so far. It does not
// consume the accumulator; more records may follow.
func (a *Accumulator) Stats() *Report {
	report := &Report{Path: a.path}
	report.Totals.Comments = a.comments

	var gcTotal, baseTotal int64
	for _, seq := range a.sequences {
		report.Sequences = append(report.Sequences, SequenceStats{
			Description: seq.description,
			Length:      seq.length,
			GC:          fraction(seq.gcCount, seq.baseCount),
		})

		t := &report.Totals
		t.Sequences++
		t.Codes += seq.length
		if t.MinLength == 0 || seq.length < t.MinLength {
			t.MinLength = seq.length
		}
		if seq.length > t.MaxLength {
			t.MaxLength = seq.length
		}
		gcTotal += seq.gcCount
		baseTotal += seq.baseCount
	}

	if report.Totals.Sequences > 0 {
		report.Totals.MeanLength = float64(report.Totals.Codes) / float64(report.Totals.Sequences)
	}
	report.Totals.GC = fraction(gcTotal, baseTotal)

	if len(a.residues) > 0 {
		report.Totals.Residues = make(map[string]int64, len(a.residues))
		for residue, count := range a.residues {
			report.Totals.Residues[residue] = count
		}
	}
	return report
}

// Collect folds a whole record stream and reports on it. The first
// producer error aborts and propagates.
func Collect(path string, records iter.Seq2[fasta.Record, error]) (*Report, error) {
	acc := NewAccumulator(path)
	for rec, err := range records {
		if err != nil {
			return nil, err
		}
		acc.Add(rec)
	}
	return acc.Stats(), nil
}

func fraction(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
