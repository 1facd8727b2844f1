package fasta_test

import (
	"bytes"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/yaklabco/gofasta/pkg/fasta"
)

// lineBreaks matches runs of line terminators. Collapsing them erases
// the wrapping differences between an input and its rewritten form.
var lineBreaks = regexp.MustCompile(`\r*\n+`)

func normalize(s string) string {
	return lineBreaks.ReplaceAllString(s, "")
}

func rewrite(t *testing.T, input string) string {
	t.Helper()

	var buf bytes.Buffer
	if err := fasta.WriteAll(&buf, fasta.Records(strings.NewReader(input))); err != nil {
		t.Fatalf("unexpected rewrite error: %v", err)
	}
	return buf.String()
}

func TestRoundTripPreservesContentModuloLineBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"bare codes", "ACGT\nACGT\n"},
		{"single description", ">h1\nACGT\n"},
		{"description then comment", ">h\n;c\nACGT\n"},
		{"two blocks", ">h1\nAC\n>h2\nGT\n"},
		{"stacked descriptions", ">h1\n>h2\nACGT\n"},
		{"stacked comments", ";c1\n;c2\nAC\n"},
		{"wrapping sequence", ">h\n" + strings.Repeat("A", 96) + "\n" + "ACGT\n"},
		{"crlf terminators", ">h\r\nACGT\r\n"},
		{"interleaved blank lines", "\n>h\n\nACGT\n\n"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			output := rewrite(t, testCase.input)
			if got, want := normalize(output), normalize(testCase.input); got != want {
				t.Errorf("expected normalized %q, got %q", want, got)
			}
		})
	}
}

func TestRewrittenFormIsAFixedPoint(t *testing.T) {
	t.Parallel()

	input := ">h1\n;c1\n" + strings.Repeat("ACGT", 50) + "\n>h2\nTTTT\n"

	first := rewrite(t, input)
	second := rewrite(t, first)
	if first != second {
		t.Errorf("expected a stable rewritten form\nfirst:  %q\nsecond: %q", first, second)
	}

	one, err := fasta.ReadAll(strings.NewReader(first))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	two, err := fasta.ReadAll(strings.NewReader(second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(one.Records(), two.Records()) {
		t.Error("expected identical records across rewrite cycles")
	}
}

func TestCodesSurviveRewrite(t *testing.T) {
	t.Parallel()

	raw := strings.Repeat("ACGTN", 50)
	output := rewrite(t, raw)

	seq, err := fasta.ReadAll(strings.NewReader(output))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := seq.String(); got != raw {
		t.Errorf("expected codes to survive, got %q", got)
	}
}

func TestRawStringRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"nucleotides", "ACGTACGT"},
		{"degenerate codes", "ACGTNRYKM"},
		{"gaps and stops", "ACGT-N*X"},
		{"empty", ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := fasta.FromRaw(testCase.raw).String(); got != testCase.raw {
				t.Errorf("expected %q, got %q", testCase.raw, got)
			}
		})
	}
}

func TestTrailingMetadataIsDropped(t *testing.T) {
	t.Parallel()

	output := rewrite(t, "AC\n>orphan header\n;orphan comment\n")
	if output != "AC" {
		t.Errorf("expected trailing metadata to vanish, got %q", output)
	}
}
