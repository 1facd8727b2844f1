package fasta

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Writer serializes Records into FASTA text. Output is buffered; call
// Flush after the last record. The column counter runs across the
// whole stream and is not reset by metadata emission.
//
// Each description of a changed block is written as its own '>' line
// preceded by a paragraph break; the block's comments follow as ';'
// lines. Code characters pack into lines of exactly Columns
// characters, the last line possibly shorter.
type Writer struct {
	bw      *bufio.Writer
	column  int64
	written int64
}

// NewWriter returns a Writer emitting FASTA text to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteRecord appends one record. Metadata is re-emitted exactly when
// the record's changed flags are set, so a stream produced by a
// Scanner writes each block once rather than once per character.
func (w *Writer) WriteRecord(rec Record) error {
	if rec.Meta.DescriptionChanged {
		for _, d := range rec.Meta.Descriptions {
			if err := w.writeString(lineBreak + lineBreak + prefixDescription + d + lineBreak); err != nil {
				return err
			}
		}
	}
	if rec.Meta.CommentChanged {
		joined := strings.Join(rec.Meta.Comments, lineBreak+prefixComment)
		if strings.TrimSpace(joined) != "" {
			if err := w.writeString(lineBreak + prefixComment + joined + lineBreak); err != nil {
				return err
			}
		}
	}
	if err := w.writeRune(rec.Code.Rune); err != nil {
		return err
	}
	w.column++
	if w.column%Columns == 0 {
		return w.writeString(lineBreak)
	}
	return nil
}

// Flush drains buffered output to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	return nil
}

// Written reports the number of bytes produced so far, including
// bytes still buffered.
func (w *Writer) Written() int64 {
	return w.written
}

func (w *Writer) writeString(s string) error {
	n, err := w.bw.WriteString(s)
	w.written += int64(n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	return nil
}

func (w *Writer) writeRune(r rune) error {
	n, err := w.bw.WriteRune(r)
	w.written += int64(n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	return nil
}

// WriteAll serializes records to dst and flushes, capturing the flush
// failure on every exit path. Record-producer errors propagate as-is;
// sink failures wrap ErrSinkWrite and abort the operation. A nil
// sequence writes nothing. Closing dst remains the opener's duty.
func WriteAll(dst io.Writer, records iter.Seq2[Record, error]) (err error) {
	if records == nil {
		return nil
	}
	w := NewWriter(dst)
	defer func() {
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
	}()
	for rec, rerr := range records {
		if rerr != nil {
			return rerr
		}
		if werr := w.WriteRecord(rec); werr != nil {
			return werr
		}
	}
	return nil
}
