package fasta_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/gofasta/pkg/fasta"
)

func TestFromRaw(t *testing.T) {
	t.Parallel()

	seq := fasta.FromRaw("ACGT")

	if seq.Len() != 4 {
		t.Fatalf("expected 4 records, got %d", seq.Len())
	}
	for i, rec := range seq.Records() {
		if rec.Code.Position != int64(i) {
			t.Errorf("record %d: expected position %d, got %d", i, i, rec.Code.Position)
		}
		if len(rec.Meta.Descriptions) != 0 || len(rec.Meta.Comments) != 0 {
			t.Errorf("record %d: expected empty metadata", i)
		}
		if rec.Meta.DescriptionChanged || rec.Meta.CommentChanged {
			t.Errorf("record %d: expected no changed flags", i)
		}
	}
	if got := seq.String(); got != "ACGT" {
		t.Errorf("expected %q, got %q", "ACGT", got)
	}
}

func TestFromCodesKeepsPositions(t *testing.T) {
	t.Parallel()

	codes := []fasta.Code{
		{Rune: 'G', Position: 7},
		{Rune: 'C', Position: 9},
	}
	seq := fasta.FromCodes(codes)

	if seq.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", seq.Len())
	}
	got := seq.Codes()
	if got[0] != codes[0] || got[1] != codes[1] {
		t.Errorf("expected codes preserved, got %+v", got)
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	seq, err := fasta.ReadAll(strings.NewReader(">h\nAC\nGT\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if seq.Len() != 4 {
		t.Fatalf("expected 4 records, got %d", seq.Len())
	}
	if got := seq.String(); got != "ACGT" {
		t.Errorf("expected %q, got %q", "ACGT", got)
	}
	first := seq.Records()[0].Meta
	if !first.DescriptionChanged || len(first.Descriptions) != 1 || first.Descriptions[0] != "h" {
		t.Errorf("unexpected first record metadata: %+v", first)
	}
}

func TestReadAllSourceFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk gone")
	_, err := fasta.ReadAll(&errReader{payload: "AC\n", err: cause})
	if !errors.Is(err, fasta.ErrSourceRead) {
		t.Fatalf("expected a source read failure, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected the original cause to be preserved, got %v", err)
	}
}

func TestSequenceRunes(t *testing.T) {
	t.Parallel()

	seq := fasta.FromRaw("ACGT")
	if got := string(seq.Runes()); got != "ACGT" {
		t.Errorf("expected %q, got %q", "ACGT", got)
	}
}

func TestSequenceAllYieldsEveryRecord(t *testing.T) {
	t.Parallel()

	seq := fasta.FromRaw("ACGT")
	var collected []rune
	for rec, err := range seq.All() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		collected = append(collected, rec.Code.Rune)
	}
	if string(collected) != "ACGT" {
		t.Errorf("expected %q, got %q", "ACGT", string(collected))
	}
}

func TestSequenceWriteTo(t *testing.T) {
	t.Parallel()

	seq, err := fasta.ReadAll(strings.NewReader(">h\nACGT\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	n, err := seq.WriteTo(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "\n\n>h\nACGT"
	if got := buf.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
	if n != int64(len(expected)) {
		t.Errorf("expected %d bytes reported, got %d", len(expected), n)
	}
}

func TestSequenceWriteToSinkFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("pipe closed")
	seq := fasta.FromRaw("ACGT")

	_, err := seq.WriteTo(&failWriter{err: cause})
	if !errors.Is(err, fasta.ErrSinkWrite) {
		t.Fatalf("expected a sink write failure, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected the original cause to be preserved, got %v", err)
	}
}

func TestSequenceMarshalText(t *testing.T) {
	t.Parallel()

	seq, err := fasta.ReadAll(strings.NewReader(";note\nAC\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := seq.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "\n;note\nAC"
	if got := string(text); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestNewSequenceSharesRecords(t *testing.T) {
	t.Parallel()

	records := []fasta.Record{{Code: fasta.Code{Rune: 'A'}}}
	seq := fasta.NewSequence(records)

	records[0].Code.Rune = 'T'
	if seq.Records()[0].Code.Rune != 'T' {
		t.Error("expected the sequence to share the caller's slice")
	}
}
