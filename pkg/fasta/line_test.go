package fasta_test

import (
	"testing"

	"github.com/yaklabco/gofasta/pkg/fasta"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected fasta.Line
	}{
		{
			name:     "description line",
			raw:      ">MCHU - Calmodulin",
			expected: fasta.Line{Kind: fasta.LineDescription, Text: "MCHU - Calmodulin"},
		},
		{
			name:     "description keeps space after marker",
			raw:      "> spaced header",
			expected: fasta.Line{Kind: fasta.LineDescription, Text: " spaced header"},
		},
		{
			name:     "bare description marker",
			raw:      ">",
			expected: fasta.Line{Kind: fasta.LineDescription, Text: ""},
		},
		{
			name:     "comment line",
			raw:      ";LCBO - Prolactin precursor",
			expected: fasta.Line{Kind: fasta.LineComment, Text: "LCBO - Prolactin precursor"},
		},
		{
			name:     "empty line",
			raw:      "",
			expected: fasta.Line{Kind: fasta.LineBlank},
		},
		{
			name:     "whitespace only line",
			raw:      "   \t  ",
			expected: fasta.Line{Kind: fasta.LineBlank},
		},
		{
			name:     "code line",
			raw:      "ACGTACGT",
			expected: fasta.Line{Kind: fasta.LineCode, Text: "ACGTACGT"},
		},
		{
			name:     "code line trimmed",
			raw:      "  ACGT  ",
			expected: fasta.Line{Kind: fasta.LineCode, Text: "ACGT"},
		},
		{
			name:     "line terminator trimmed before classification",
			raw:      "ACGT\r\n",
			expected: fasta.Line{Kind: fasta.LineCode, Text: "ACGT"},
		},
		{
			name:     "marker after leading whitespace",
			raw:      "   >indented header",
			expected: fasta.Line{Kind: fasta.LineDescription, Text: "indented header"},
		},
		{
			name:     "non-alphabet characters pass through",
			raw:      "ACGT-N*X",
			expected: fasta.Line{Kind: fasta.LineCode, Text: "ACGT-N*X"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := fasta.Classify(testCase.raw)

			if got.Kind != testCase.expected.Kind {
				t.Errorf("kind: expected %v, got %v", testCase.expected.Kind, got.Kind)
			}
			if got.Text != testCase.expected.Text {
				t.Errorf("text: expected %q, got %q", testCase.expected.Text, got.Text)
			}
		})
	}
}

func TestLineKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     fasta.LineKind
		expected string
	}{
		{fasta.LineBlank, "blank"},
		{fasta.LineDescription, "description"},
		{fasta.LineComment, "comment"},
		{fasta.LineCode, "code"},
		{fasta.LineKind(99), "unknown"},
	}

	for _, testCase := range tests {
		if got := testCase.kind.String(); got != testCase.expected {
			t.Errorf("LineKind(%d).String(): expected %q, got %q", testCase.kind, testCase.expected, got)
		}
	}
}
