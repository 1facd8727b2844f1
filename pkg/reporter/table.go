package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/gofasta/internal/ui/pretty"
	"github.com/yaklabco/gofasta/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// overallSeparatorWidth sizes the divider before the overall summary
// in per-file mode.
const overallSeparatorWidth = 80

// TableReporter formats results as a styled statistics table.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(string(opts.Color), opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	// Try to get terminal width
	termWidth := getTerminalWidth(opts.Writer)

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, colorEnabled, termWidth),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

	// Use per-file or combined output based on option
	if r.opts.PerFile {
		r.reportPerFile(result)
	} else {
		r.reportCombined(result)
	}

	return failedCount(result), nil
}

// reportCombined outputs all files in a single table.
func (r *TableReporter) reportCombined(result *runner.Result) {
	table := r.formatter.FormatTable(r.displayResult(result))
	fmt.Fprint(r.bw, table)

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.formatter.FormatTableSummary(result.Stats))
	}
}

// reportPerFile outputs a separate table for each file with sequences.
func (r *TableReporter) reportPerFile(result *runner.Result) {
	shown := 0

	for _, file := range result.Files {
		path := displayPath(r.opts.WorkingDir, file.Path)

		if file.Error != nil {
			fmt.Fprintln(r.bw)
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		table := r.formatter.FormatFileTable(file)
		if table == "" {
			continue
		}
		shown++

		// Print file header
		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.Bold.Render(path))
		fmt.Fprint(r.bw, table)
	}

	if shown == 0 && !result.HasFailures() {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No sequences found."))
		return
	}

	// Print overall summary
	if r.opts.ShowSummary && shown > 0 {
		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("=", overallSeparatorWidth)))
		fmt.Fprintln(r.bw, r.styles.Bold.Render("Overall Summary"))
		fmt.Fprintln(r.bw, r.formatter.FormatTableSummary(result.Stats))
	}
}

// displayResult rewrites outcome paths for display without touching
// the caller's result.
func (r *TableReporter) displayResult(result *runner.Result) *runner.Result {
	if r.opts.WorkingDir == "" {
		return result
	}

	display := &runner.Result{
		Files: make([]runner.FileOutcome, len(result.Files)),
		Stats: result.Stats,
	}
	copy(display.Files, result.Files)
	for i := range display.Files {
		display.Files[i].Path = displayPath(r.opts.WorkingDir, display.Files[i].Path)
	}
	return display
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
