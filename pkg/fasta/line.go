package fasta

import "strings"

// LineKind classifies one input line.
type LineKind int

const (
	// LineBlank is a line that is empty after trimming. Blank lines
	// carry no codes and no metadata.
	LineBlank LineKind = iota

	// LineDescription is a '>'-prefixed header line.
	LineDescription

	// LineComment is a ';'-prefixed comment line.
	LineComment

	// LineCode is any other non-blank line; every character on it is
	// one code, in order.
	LineCode
)

// String returns the kind name.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineDescription:
		return "description"
	case LineComment:
		return "comment"
	case LineCode:
		return "code"
	default:
		return "unknown"
	}
}

// Line is one classified input line. For description and comment lines
// Text holds the content with the marker stripped; only the marker is
// removed, so a space following '>' survives. For code lines Text is
// the trimmed line. Blank lines carry empty Text.
type Line struct {
	Kind LineKind
	Text string
}

// Classify trims raw and determines its role. Marker checks run before
// the blank check, every line maps to exactly one kind, and no content
// validation is performed; classification cannot fail.
func Classify(raw string) Line {
	line := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(line, prefixDescription):
		return Line{Kind: LineDescription, Text: strings.TrimPrefix(line, prefixDescription)}
	case strings.HasPrefix(line, prefixComment):
		return Line{Kind: LineComment, Text: strings.TrimPrefix(line, prefixComment)}
	case line == "":
		return Line{Kind: LineBlank}
	default:
		return Line{Kind: LineCode, Text: line}
	}
}
