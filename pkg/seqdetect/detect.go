// Package seqdetect detects FASTA content in files whose extension
// gives nothing away. It checks a deterministic shape heuristic first
// and falls back to go-enry language identification, which knows the
// format from its linguist heritage.
package seqdetect

import (
	"bytes"
	"io"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/gofasta/pkg/seqio"
)

// FormatFASTA is the name linguist and go-enry use for the format.
const FormatFASTA = "FASTA"

// SampleSize is how much of a file Sniff reads before deciding.
const SampleSize = 8192

// maxShapeLines bounds the shape heuristic on pathological inputs.
const maxShapeLines = 100

// Detect returns the detected format name for content, or "" when the
// content is not recognizably FASTA.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return ""
	}

	// Strategy 1: the deterministic shape check. A header line followed
	// by sequence-shaped lines is FASTA, no classifier needed.
	if detectByShape(content) {
		return FormatFASTA
	}

	// Strategy 2: the trained classifier, constrained to formats FASTA
	// is plausibly confused with.
	candidates := []string{FormatFASTA, "Text", "Markdown", "YAML", "JSON"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang == FormatFASTA {
		return FormatFASTA
	}

	return ""
}

// IsFASTA reports whether content looks like FASTA text.
func IsFASTA(content []byte) bool {
	return Detect(content) == FormatFASTA
}

// Sniff reads the head of the file at path, decompressing if needed,
// and reports whether it looks like FASTA.
func Sniff(path string) (bool, error) {
	rc, err := seqio.Open(path)
	if err != nil {
		return false, err
	}
	defer rc.Close()

	sample := make([]byte, SampleSize)
	n, err := io.ReadFull(rc, sample)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}
	return IsFASTA(sample[:n]), nil
}

// detectByShape requires at least one description header and at least
// one sequence line, with every non-metadata line sequence-shaped.
// Headerless code streams are left to the classifier.
func detectByShape(content []byte) bool {
	var sawHeader, sawCode bool

	lines := bytes.Split(content, []byte("\n"))
	if len(lines) > maxShapeLines {
		lines = lines[:maxShapeLines]
	}

	for _, line := range lines {
		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0:
			continue
		case line[0] == '>':
			sawHeader = true
		case line[0] == ';':
			continue
		case isSequenceLine(line):
			sawCode = true
		default:
			return false
		}
	}

	return sawHeader && sawCode
}

// isSequenceLine accepts IUPAC residue letters plus the gap and stop
// characters used in alignments.
func isSequenceLine(line []byte) bool {
	for _, b := range line {
		switch {
		case b >= 'A' && b <= 'Z':
		case b >= 'a' && b <= 'z':
		case b == '*' || b == '-' || b == '.':
		default:
			return false
		}
	}
	return true
}
