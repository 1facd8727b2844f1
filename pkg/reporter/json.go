package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gofasta/pkg/runner"
	"github.com/yaklabco/gofasta/pkg/seqstat"
)

// jsonSchemaVersion identifies the JSON output shape.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's statistics. Sequence and
// totals shapes come straight from seqstat, which carries JSON tags.
type JSONFileResult struct {
	Path      string                  `json:"path"`
	Sequences []seqstat.SequenceStats `json:"sequences,omitempty"`
	Totals    *seqstat.Totals         `json:"totals,omitempty"`
	Modified  bool                    `json:"modified,omitempty"`
	Error     string                  `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics across all files.
type JSONSummary struct {
	FilesScanned  int   `json:"filesScanned"`
	FilesFailed   int   `json:"filesFailed"`
	FilesModified int   `json:"filesModified"`
	Sequences     int   `json:"sequences"`
	Codes         int64 `json:"totalCodes"`
	Comments      int   `json:"comments"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesFailed, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	// Pre-allocate if we have files
	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path: displayPath(r.opts.WorkingDir, file.Path),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		if file.Result != nil {
			fileResult.Modified = file.Result.Written

			if report := file.Result.Report; report != nil {
				if r.opts.ShowSequences {
					fileResult.Sequences = report.Sequences
				}
				totals := report.Totals
				fileResult.Totals = &totals
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesScanned:  stats.FilesProcessed,
		FilesFailed:   stats.FilesFailed,
		FilesModified: stats.FilesModified,
		Sequences:     stats.Sequences,
		Codes:         stats.Codes,
		Comments:      stats.Comments,
	}

	return output
}
