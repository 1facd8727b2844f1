package seqstat

// Report contains pre-computed statistics for one FASTA input.
// Computed once by an Accumulator, used by all renderers.
type Report struct {
	// Path names the input the statistics describe. Empty for
	// anonymous streams.
	Path string `json:"path,omitempty"`

	// Sequences holds per-sequence statistics in input order.
	Sequences []SequenceStats `json:"sequences,omitempty"`

	// Totals contains aggregate statistics across all sequences.
	Totals Totals `json:"summary"`
}

// SequenceStats describes one sequence, meaning the run of codes
// between description headers.
type SequenceStats struct {
	// Description is the header line nearest to the codes, without
	// its marker. Empty for headerless leading codes.
	Description string `json:"description,omitempty"`

	// Length is the number of codes in the sequence.
	Length int64 `json:"length"`

	// GC is the fraction of unambiguous nucleotides that are G or C.
	// Zero when the sequence holds no unambiguous nucleotides.
	GC float64 `json:"gcFraction"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Sequences  int              `json:"sequences"`
	Codes      int64            `json:"totalCodes"`
	Comments   int              `json:"comments"`
	MinLength  int64            `json:"minLength"`
	MaxLength  int64            `json:"maxLength"`
	MeanLength float64          `json:"meanLength"`
	GC         float64          `json:"gcFraction"`
	Residues   map[string]int64 `json:"residues,omitempty"`
}

// Empty returns true if no codes were seen.
func (t Totals) Empty() bool {
	return t.Codes == 0
}
