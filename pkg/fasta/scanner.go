package fasta

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// accumulator is the single-owner state machine behind one Scanner.
// It tracks the current metadata block, the two changed flags, and the
// read-position counter. Snapshots handed out in Records alias its
// slices; the slices are replaced, never mutated, when a new block
// begins, so earlier snapshots stay intact.
type accumulator struct {
	descriptions []string
	comments     []string

	descriptionChanged bool
	commentChanged     bool

	inBlock  bool
	position int64
}

// add consumes one description or comment line. Entering a block
// discards the previous block's lines and lowers both flags. Content
// that is blank after the marker contributes nothing, though it still
// enters the block state.
func (a *accumulator) add(ln Line) {
	if !a.inBlock {
		a.inBlock = true
		a.descriptions = nil
		a.comments = nil
		a.descriptionChanged = false
		a.commentChanged = false
	}
	if strings.TrimSpace(ln.Text) == "" {
		return
	}
	switch ln.Kind {
	case LineDescription:
		a.descriptions = append(a.descriptions, ln.Text)
	case LineComment:
		a.comments = append(a.comments, ln.Text)
	}
}

// leave marks the end of a metadata block when a code line follows it.
// The next emitted record carries both changed flags.
func (a *accumulator) leave() {
	if a.inBlock {
		a.descriptionChanged = true
		a.commentChanged = true
		a.inBlock = false
	}
}

// emit freezes one record for r and advances the position counter.
// Changed flags are delivered exactly once: they reset the moment a
// record has carried them, regardless of how the following code
// characters are split across lines.
func (a *accumulator) emit(r rune) Record {
	rec := Record{
		Code: Code{Rune: r, Position: a.position},
		Meta: Metadata{
			Descriptions:       a.descriptions,
			Comments:           a.comments,
			DescriptionChanged: a.descriptionChanged,
			CommentChanged:     a.commentChanged,
		},
	}
	a.position++
	a.descriptionChanged = false
	a.commentChanged = false
	return rec
}

// Scanner produces one Record per code character read from a FASTA
// stream. It is lazy, single-pass, and forward-only: nothing is read
// from the underlying stream until Scan is called, and consuming the
// Scanner exhausts the stream. Lines of any length are accepted.
//
// The loop mirrors bufio.Scanner:
//
//	sc := fasta.NewScanner(r)
//	for sc.Scan() {
//		rec := sc.Record()
//		// ...
//	}
//	if err := sc.Err(); err != nil {
//		// ...
//	}
//
// A Scanner must not be shared between goroutines.
type Scanner struct {
	br     *bufio.Reader
	closer io.Closer

	acc  accumulator
	line string // unconsumed characters of the current code line
	rec  Record
	err  error
	eof  bool
	done bool
}

// NewScanner returns a Scanner reading FASTA text from r. The caller
// retains ownership of r; use NewScanCloser to tie a resource's
// lifetime to the scan.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{br: bufio.NewReader(r)}
}

// NewScanCloser returns a Scanner that closes rc when the stream is
// exhausted or when Close is called, whichever happens first.
func NewScanCloser(rc io.ReadCloser) *Scanner {
	s := NewScanner(rc)
	s.closer = rc
	return s
}

// Scan advances to the next code record. It returns false when the
// input is exhausted or a read fails; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	for {
		if s.line != "" {
			r, size := utf8.DecodeRuneInString(s.line)
			s.line = s.line[size:]
			s.rec = s.acc.emit(r)
			return true
		}

		raw, err := s.readLine()
		if err != nil && err != io.EOF {
			s.fail(err)
			return false
		}
		if raw == "" && err == io.EOF {
			s.finish()
			return false
		}

		switch ln := Classify(raw); ln.Kind {
		case LineDescription, LineComment:
			s.acc.add(ln)
		case LineCode:
			s.acc.leave()
			s.line = ln.Text
		case LineBlank:
			// Invisible to the accumulator.
		}
		if err == io.EOF {
			s.eof = true
		}
	}
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the first failure encountered, or nil. Clean end of
// input is not an error.
func (s *Scanner) Err() error {
	return s.err
}

// Close releases the underlying input, if the Scanner owns one. It is
// safe to call at any point and more than once; scanning stops after
// the first call. Close is unnecessary when the stream was fully
// consumed, since exhaustion releases the input already.
func (s *Scanner) Close() error {
	s.done = true
	if s.closer == nil {
		return nil
	}
	closer := s.closer
	s.closer = nil
	if err := closer.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	return nil
}

// All returns the remaining records as a range-over-func iterator
// that yields each record with a nil error and, after a failed read,
// a final zero record carrying the failure. The underlying input is
// released on every exit path; a close failure during an early break
// is discarded (drive the Scanner directly to observe it).
func (s *Scanner) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		defer s.Close()
		for s.Scan() {
			if !yield(s.rec, nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(Record{}, err)
		}
	}
}

// Records reads FASTA text from r as a range-over-func iterator.
// Shorthand for NewScanner(r).All().
func Records(r io.Reader) iter.Seq2[Record, error] {
	return NewScanner(r).All()
}

// readLine returns the next input line, terminator included, pairing
// the final unterminated line with io.EOF. Classification trims the
// terminator along with surrounding whitespace.
func (s *Scanner) readLine() (string, error) {
	if s.eof {
		return "", io.EOF
	}
	line, err := s.br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, err
}

// fail records a wrapped read failure and releases the input. The
// read failure wins over any secondary close failure.
func (s *Scanner) fail(err error) {
	s.err = fmt.Errorf("%w: %w", ErrSourceRead, err)
	s.done = true
	if s.closer != nil {
		_ = s.closer.Close()
		s.closer = nil
	}
}

// finish releases the input at clean end of stream. A failing close is
// still a source failure and surfaces through Err.
func (s *Scanner) finish() {
	s.done = true
	if s.closer == nil {
		return
	}
	closer := s.closer
	s.closer = nil
	if err := closer.Close(); err != nil && s.err == nil {
		s.err = fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
}
