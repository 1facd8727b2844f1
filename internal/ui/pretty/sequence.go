package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gofasta/pkg/seqstat"
)

// noDescription labels headerless leading codes in listings.
const noDescription = "(no description)"

// FormatSequenceLine formats one sequence's statistics for terminal
// output. The index is zero-based; display numbering starts at 1.
func (s *Styles) FormatSequenceLine(index int, seq seqstat.SequenceStats) string {
	desc := seq.Description
	if desc == "" {
		desc = noDescription
	}

	number := s.SeqNumber.Render(fmt.Sprintf("#%d", index+1))

	codeWord := "codes"
	if seq.Length == 1 {
		codeWord = "code"
	}
	length := s.Metric.Render(fmt.Sprintf("%d %s", seq.Length, codeWord))

	line := fmt.Sprintf("  %s  %s  %s", number, s.Description.Render(desc), length)
	if seq.Length > 0 {
		line += "  " + s.Dim.Render("GC "+formatPercent(seq.GC))
	}

	return line + "\n"
}

// FormatFileTotals formats the aggregate line shown under a file's
// sequence listing.
func (s *Styles) FormatFileTotals(totals seqstat.Totals) string {
	parts := []string{fmt.Sprintf("%d codes", totals.Codes)}

	if totals.Sequences > 1 {
		parts = append(parts,
			fmt.Sprintf("min %d", totals.MinLength),
			fmt.Sprintf("max %d", totals.MaxLength),
			fmt.Sprintf("mean %s", formatMean(totals.MeanLength)),
		)
	}

	if !totals.Empty() {
		parts = append(parts, "GC "+formatPercent(totals.GC))
	}

	if totals.Comments > 0 {
		commentWord := "comments"
		if totals.Comments == 1 {
			commentWord = "comment"
		}
		parts = append(parts, fmt.Sprintf("%d %s", totals.Comments, commentWord))
	}

	return "  " + s.Dim.Render(strings.Join(parts, ", ")) + "\n"
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, sequenceCount int) string {
	header := s.FilePath.Render(path)
	if sequenceCount > 0 {
		word := "sequences"
		if sequenceCount == 1 {
			word = "sequence"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", sequenceCount, word))
	}
	return header
}

// formatPercent renders a fraction as a percentage with one decimal.
func formatPercent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// formatMean renders a mean length with one decimal.
func formatMean(mean float64) string {
	return fmt.Sprintf("%.1f", mean)
}
