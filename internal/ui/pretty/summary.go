package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gofasta/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 sequences (4210 codes) in 3 files, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.Sequences == 0 {
		msg := s.Success.Render("No sequences found") +
			s.Dim.Render(fmt.Sprintf(" (%d files scanned)", stats.FilesProcessed))
		if stats.FilesFailed > 0 {
			msg += ", " + s.Error.Render(fmt.Sprintf("%d failed", stats.FilesFailed))
		}
		return msg + "\n"
	}

	var parts []string

	// Sequence count with code detail
	seqWord := "sequences"
	if stats.Sequences == 1 {
		seqWord = "sequence"
	}
	detail := fmt.Sprintf("%d codes", stats.Codes)
	if stats.Comments > 0 {
		commentWord := "comments"
		if stats.Comments == 1 {
			commentWord = "comment"
		}
		detail += fmt.Sprintf(", %d %s", stats.Comments, commentWord)
	}
	parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.Sequences, seqWord, detail))

	// Files scanned
	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesProcessed, fileWord))

	// Files rewritten in place
	if stats.FilesModified > 0 {
		modWord := wordFiles
		if stats.FilesModified == 1 {
			modWord = wordFile
		}
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s rewritten", stats.FilesModified, modWord)))
	}

	// Unreadable files
	if stats.FilesFailed > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesFailed)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files scanned:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesFailed > 0 {
		builder.WriteString("  Files failed:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}

	if stats.FilesModified > 0 {
		builder.WriteString("  Files rewritten:  " +
			s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}

	builder.WriteString("\n")

	// Stream contents
	builder.WriteString("  Sequences:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.Sequences)) + "\n")
	builder.WriteString("  Codes:            " +
		s.SummaryValue.Render(strconv.FormatInt(stats.Codes, 10)) + "\n")

	if stats.Comments > 0 {
		builder.WriteString("  Comments:         " +
			s.SummaryValue.Render(strconv.Itoa(stats.Comments)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.FilesFailed > 0:
		builder.WriteString(s.Failure.Render("Scan failed"))
	case stats.Sequences == 0:
		builder.WriteString(s.Warning.Render("Scan completed, no sequences found"))
	default:
		builder.WriteString(s.Success.Render("Scan completed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
