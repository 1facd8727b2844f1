package fasta

// Code is a single sequence character together with its zero-based
// read position in the overall code stream. Positions count only code
// characters; metadata and blank lines do not advance them. A Code is
// an immutable value once produced.
type Code struct {
	Rune     rune
	Position int64
}

// WithRune returns a copy of c carrying r at the same position.
func (c Code) WithRune(r rune) Code {
	return Code{Rune: r, Position: c.Position}
}

// Metadata is a snapshot of the most recent contiguous block of
// description and comment lines preceding a code. Both lists keep
// their input order; descriptions and comments accumulate
// independently and may interleave within one block.
//
// DescriptionChanged and CommentChanged are true only on the single
// record immediately following the block that produced them; every
// later record reports false until a new block appears, even though
// the lists themselves are still returned. Snapshots alias shared
// backing slices and must not be mutated.
type Metadata struct {
	Descriptions []string
	Comments     []string

	DescriptionChanged bool
	CommentChanged     bool
}

// Record pairs one code with the metadata in effect at its position.
// A scan produces Records in input order with positions strictly
// increasing by one from zero.
type Record struct {
	Code Code
	Meta Metadata
}
