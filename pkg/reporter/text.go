package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gofasta/internal/ui/pretty"
	"github.com/yaklabco/gofasta/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(string(opts.Color), opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to scan."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		path := displayPath(r.opts.WorkingDir, file.Path)

		// Handle file errors
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || file.Result.Report == nil {
			continue
		}

		report := file.Result.Report

		// File header
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, report.Totals.Sequences))

		if r.opts.ShowSequences {
			for i, seq := range report.Sequences {
				fmt.Fprint(r.bw, r.styles.FormatSequenceLine(i, seq))
			}
		}
		fmt.Fprint(r.bw, r.styles.FormatFileTotals(report.Totals))

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return failedCount(result), nil
}
