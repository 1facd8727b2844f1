package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gofasta/pkg/runner"
	"github.com/yaklabco/gofasta/pkg/seqstat"
)

// Table formatting constants.
const (
	tablePadding     = 2
	fileColumnCount  = 7 // FILE, SEQS, CODES, MIN, MAX, MEAN, GC%
	seqColumnCount   = 4 // #, DESCRIPTION, LENGTH, GC%
	minFileWidth     = 20
	minDescWidth     = 30
	minIndexWidth    = 2
	minCountWidth    = 5
	minCodesWidth    = 8
	minLengthWidth   = 6
	minMeanWidth     = 7
	minGCWidth       = 5
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// FileRow is one file's aggregate entry in the stat table.
type FileRow struct {
	Path   string
	Totals seqstat.Totals
	Err    error
}

// TableFormatter formats sequence statistics as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable formats runner results as a styled table with one row
// per file. Unreadable files appear as error rows.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	rows := collectFileRows(result)
	if len(rows) == 0 {
		return ""
	}

	// Calculate column widths
	colWidths := t.calculateFileColumnWidths(rows)

	var builder strings.Builder

	// Write header
	builder.WriteString(t.formatFileHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatFileSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	// Write rows
	for _, row := range rows {
		builder.WriteString(t.formatFileRow(row, colWidths))
		builder.WriteString("\n")
	}

	// Write footer separator
	builder.WriteString(t.formatFileSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	// Write legend
	builder.WriteString(t.formatLegend())
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileTable formats a single file's per-sequence statistics as a
// standalone table.
func (t *TableFormatter) FormatFileTable(file runner.FileOutcome) string {
	if file.Result == nil || file.Result.Report == nil {
		return ""
	}

	report := file.Result.Report
	if len(report.Sequences) == 0 {
		return ""
	}

	// Calculate column widths for this file (no FILE column since
	// it's shown in the header)
	colWidths := t.calculateSeqColumnWidths(report.Sequences)

	var builder strings.Builder

	// Write header
	builder.WriteString(t.formatSeqHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeqSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	// Write rows
	for i, seq := range report.Sequences {
		builder.WriteString(t.formatSeqRow(i, seq, colWidths))
		builder.WriteString("\n")
	}

	// Write totals for this file
	builder.WriteString(t.formatSeqSeparator(colWidths, lightSeparator))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeqTotals(report.Totals))
	builder.WriteString("\n")

	return builder.String()
}

// collectFileRows flattens runner outcomes into table rows, one per
// file. Failed files become error rows.
func collectFileRows(result *runner.Result) []FileRow {
	rows := make([]FileRow, 0, len(result.Files))

	for _, file := range result.Files {
		if file.Error != nil {
			rows = append(rows, FileRow{Path: file.Path, Err: file.Error})
			continue
		}
		if file.Result == nil || file.Result.Report == nil {
			continue
		}
		rows = append(rows, FileRow{Path: file.Path, Totals: file.Result.Report.Totals})
	}

	return rows
}

// calculateFileColumnWidths determines optimal column widths based on content.
func (t *TableFormatter) calculateFileColumnWidths(rows []FileRow) fileColumnWidths {
	widths := fileColumnWidths{
		file:   minFileWidth,
		seqs:   minCountWidth,
		codes:  minCodesWidth,
		length: minLengthWidth,
		mean:   minMeanWidth,
		gc:     minGCWidth,
	}

	// Scan all rows to find max widths
	for _, row := range rows {
		if len(row.Path) > widths.file {
			widths.file = len(row.Path)
		}
		if row.Err != nil {
			continue
		}
		if w := len(strconv.Itoa(row.Totals.Sequences)); w > widths.seqs {
			widths.seqs = w
		}
		if w := len(strconv.FormatInt(row.Totals.Codes, 10)); w > widths.codes {
			widths.codes = w
		}
		if w := len(strconv.FormatInt(row.Totals.MaxLength, 10)); w > widths.length {
			widths.length = w
		}
		if w := len(formatMean(row.Totals.MeanLength)); w > widths.mean {
			widths.mean = w
		}
	}

	// Constrain to terminal width by narrowing the file column
	totalWidth := t.calculateFileTableWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.file = max(minFileWidth, widths.file-excess)
	}

	return widths
}

type fileColumnWidths struct {
	file   int
	seqs   int
	codes  int
	length int
	mean   int
	gc     int
}

// calculateFileTableWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateFileTableWidth(widths fileColumnWidths) int {
	return widths.file + widths.seqs + widths.codes + widths.length*2 +
		widths.mean + widths.gc + tablePadding*(fileColumnCount-1) + 1
}

// formatFileHeader formats the file table header row.
func (t *TableFormatter) formatFileHeader(widths fileColumnWidths) string {
	header := fmt.Sprintf(" %-*s  %*s  %*s  %*s  %*s  %*s  %*s",
		widths.file, "FILE",
		widths.seqs, "SEQS",
		widths.codes, "CODES",
		widths.length, "MIN",
		widths.length, "MAX",
		widths.mean, "MEAN",
		widths.gc, "GC%",
	)
	return t.styles.TableHeader.Render(header)
}

// formatFileSeparator formats a separator line for the file table.
func (t *TableFormatter) formatFileSeparator(widths fileColumnWidths, char string) string {
	sep := strings.Repeat(char, t.calculateFileTableWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatFileRow formats a single file row with state-based styling.
func (t *TableFormatter) formatFileRow(row FileRow, widths fileColumnWidths) string {
	file := truncateFilePath(row.Path, widths.file)

	if row.Err != nil {
		span := t.calculateFileTableWidth(widths) - widths.file - tablePadding - 1
		message := truncateString("read failed: "+row.Err.Error(), span)
		return t.styles.TableErrorRow.Render(fmt.Sprintf(" %-*s  %s", widths.file, file, message))
	}

	totals := row.Totals
	content := fmt.Sprintf(" %-*s  %*s  %*s  %*s  %*s  %*s  %*s",
		widths.file, file,
		widths.seqs, strconv.Itoa(totals.Sequences),
		widths.codes, strconv.FormatInt(totals.Codes, 10),
		widths.length, strconv.FormatInt(totals.MinLength, 10),
		widths.length, strconv.FormatInt(totals.MaxLength, 10),
		widths.mean, formatMean(totals.MeanLength),
		widths.gc, formatPercent(totals.GC),
	)

	return t.getRowStyle(row).Render(content)
}

// getRowStyle returns the appropriate style for a file row.
func (t *TableFormatter) getRowStyle(row FileRow) lipgloss.Style {
	switch {
	case row.Err != nil:
		return t.styles.TableErrorRow
	case row.Totals.Empty():
		return t.styles.TableWarnRow
	default:
		return lipgloss.NewStyle()
	}
}

// calculateSeqColumnWidths calculates widths for the per-file table.
func (t *TableFormatter) calculateSeqColumnWidths(sequences []seqstat.SequenceStats) seqColumnWidths {
	widths := seqColumnWidths{
		index:  minIndexWidth,
		desc:   minDescWidth,
		length: minLengthWidth,
		gc:     minGCWidth,
	}

	if w := len(strconv.Itoa(len(sequences))); w > widths.index {
		widths.index = w
	}

	for _, seq := range sequences {
		desc := seq.Description
		if desc == "" {
			desc = noDescription
		}
		if len(desc) > widths.desc {
			widths.desc = len(desc)
		}
		if w := len(strconv.FormatInt(seq.Length, 10)); w > widths.length {
			widths.length = w
		}
	}

	// Constrain to terminal width by narrowing the description column
	totalWidth := t.calculateSeqTableWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.desc = max(minDescWidth, widths.desc-excess)
	}

	return widths
}

type seqColumnWidths struct {
	index  int
	desc   int
	length int
	gc     int
}

// calculateSeqTableWidth calculates the per-file table width.
func (t *TableFormatter) calculateSeqTableWidth(widths seqColumnWidths) int {
	return widths.index + widths.desc + widths.length + widths.gc +
		tablePadding*(seqColumnCount-1) + 1
}

// formatSeqHeader formats the header for per-file tables.
func (t *TableFormatter) formatSeqHeader(widths seqColumnWidths) string {
	header := fmt.Sprintf(" %*s  %-*s  %*s  %*s",
		widths.index, "#",
		widths.desc, "DESCRIPTION",
		widths.length, "LENGTH",
		widths.gc, "GC%",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeqSeparator formats a separator line for per-file tables.
func (t *TableFormatter) formatSeqSeparator(widths seqColumnWidths, char string) string {
	sep := strings.Repeat(char, t.calculateSeqTableWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatSeqRow formats a single row in the per-file table.
func (t *TableFormatter) formatSeqRow(index int, seq seqstat.SequenceStats, widths seqColumnWidths) string {
	desc := seq.Description
	if desc == "" {
		desc = noDescription
	}
	desc = truncateString(desc, widths.desc)

	return fmt.Sprintf(" %*s  %-*s  %*s  %*s",
		widths.index, strconv.Itoa(index+1),
		widths.desc, desc,
		widths.length, strconv.FormatInt(seq.Length, 10),
		widths.gc, formatPercent(seq.GC),
	)
}

// formatSeqTotals formats the totals line for a single file.
func (t *TableFormatter) formatSeqTotals(totals seqstat.Totals) string {
	seqWord := "sequences"
	if totals.Sequences == 1 {
		seqWord = "sequence"
	}

	parts := []string{
		fmt.Sprintf("%d %s", totals.Sequences, seqWord),
		fmt.Sprintf("%d codes", totals.Codes),
	}

	if totals.Sequences > 1 {
		parts = append(parts, "mean "+formatMean(totals.MeanLength))
	}
	if !totals.Empty() {
		parts = append(parts, "GC "+formatPercent(totals.GC))
	}
	if totals.Comments > 0 {
		parts = append(parts, t.styles.Dim.Render(fmt.Sprintf("%d comments", totals.Comments)))
	}

	return " " + strings.Join(parts, " | ")
}

// formatLegend formats the legend explaining the table columns and colors.
func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(" GC% = G+C share of unambiguous nucleotides")
	}

	errorSample := t.styles.TableErrorRow.Render(" failed ")
	warnSample := t.styles.TableWarnRow.Render(" empty ")

	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s = unreadable file  %s = no codes  GC%% = G+C share of unambiguous nucleotides",
			errorSample, warnSample),
	)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats) string {
	fileWord := "files"
	if stats.FilesProcessed == 1 {
		fileWord = "file"
	}

	seqWord := "sequences"
	if stats.Sequences == 1 {
		seqWord = "sequence"
	}

	parts := []string{
		fmt.Sprintf("%d %s scanned", stats.FilesProcessed, fileWord),
		fmt.Sprintf("%d %s", stats.Sequences, seqWord),
		fmt.Sprintf("%d codes", stats.Codes),
	}

	if stats.FilesModified > 0 {
		parts = append(parts, t.styles.Success.Render(fmt.Sprintf("%d rewritten", stats.FilesModified)))
	}
	if stats.FilesFailed > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d failed", stats.FilesFailed)))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
