package runner

import "github.com/yaklabco/gofasta/pkg/seqstat"

// FileResult is what a ProcessFunc reports back for one file.
type FileResult struct {
	// Report contains the sequence statistics collected from the file.
	Report *seqstat.Report

	// Written is true when the file was rewritten in place.
	Written bool
}

// FileOutcome pairs a processed path with its result or error.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the processing result for this file.
	// Nil if the file encountered an error during processing.
	Result *FileResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesFailed is the number of files that encountered errors.
	FilesFailed int

	// FilesModified is the number of files rewritten in place.
	FilesModified int

	// Sequences is the total number of sequences across all files.
	Sequences int

	// Codes is the total number of sequence characters across all files.
	Codes int64

	// Comments is the total number of comment lines across all files.
	Comments int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file could not be processed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed > 0
}

// Reports returns the per-file statistics in path order, skipping
// failed files.
func (r *Result) Reports() []*seqstat.Report {
	if r == nil {
		return nil
	}
	reports := make([]*seqstat.Report, 0, len(r.Files))
	for _, outcome := range r.Files {
		if outcome.Error != nil || outcome.Result == nil || outcome.Result.Report == nil {
			continue
		}
		reports = append(reports, outcome.Result.Report)
	}
	return reports
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesFailed++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Result.Written {
		r.Stats.FilesModified++
	}

	if report := outcome.Result.Report; report != nil {
		r.Stats.Sequences += report.Totals.Sequences
		r.Stats.Codes += report.Totals.Codes
		r.Stats.Comments += report.Totals.Comments
	}
}
