// Package fasta reads and writes the FASTA biological sequence format.
//
// FASTA text interleaves single-character sequence codes (nucleotides
// or amino acids) with metadata lines: descriptions prefixed by '>'
// and comments prefixed by ';'. The read path turns a character stream
// into a lazy sequence of Records, each pairing one code with a
// snapshot of the metadata in effect at its position. The write path
// serializes such a sequence back into FASTA text, re-emitting a
// metadata block exactly once at each transition and wrapping code
// characters at a fixed column width.
//
// The package performs no alphabet validation: non-ACGT characters
// pass through unchanged in both directions.
package fasta

import "errors"

// Columns is the fixed line width for serialized code characters.
const Columns = 80

// Line markers recognized by the classifier and emitted by the writer.
const (
	prefixDescription = ">"
	prefixComment     = ";"
	lineBreak         = "\n"
)

// Sentinel errors for the two failure kinds this package surfaces.
// Underlying causes are attached via wrapping and reachable through
// errors.Is / errors.As.
var (
	// ErrSourceRead wraps any failure reading from the input stream.
	ErrSourceRead = errors.New("source read failure")

	// ErrSinkWrite wraps any failure writing to the output stream.
	ErrSinkWrite = errors.New("sink write failure")
)
